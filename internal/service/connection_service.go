package service

import (
	"context"
	"errors"

	"careerready_backend/internal/model"
	"careerready_backend/internal/repository"
	"careerready_backend/internal/util"
	"careerready_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ConnectionService struct {
	UserRepo     *repository.UserRepository
	ExamRepo     *repository.ExamRepository
	InterestRepo *repository.InterestRepository
}

func NewConnectionService(userRepo *repository.UserRepository, examRepo *repository.ExamRepository, interestRepo *repository.InterestRepository) *ConnectionService {
	return &ConnectionService{
		UserRepo:     userRepo,
		ExamRepo:     examRepo,
		InterestRepo: interestRepo,
	}
}

// mapUserLookup maps a missing row to ErrUserNotFound; every other
// repository error passes through untouched.
func mapUserLookup(user *model.User, err error) (*model.User, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *ConnectionService) findUser(id string) (*model.User, error) {
	return mapUserLookup(s.UserRepo.FindByID(id))
}

// IsFavorite reports whether viewerID has favorited targetID.
func (s *ConnectionService) IsFavorite(viewerID, targetID string) (bool, error) {
	viewer, err := s.findUser(viewerID)
	if err != nil {
		return false, err
	}
	return viewer.Favorites.Contains(targetID), nil
}

// Suggestion is one Connections card: a public profile plus the aggregate
// exam score fetched per candidate.
type Suggestion struct {
	User       model.User `json:"user"`
	IsFavorite bool       `json:"isFavorite"`
	AvgScore   float64    `json:"avgScore"`
}

// Suggestions runs the recommendation filter for one user and enriches every
// candidate with an average exam score. A failed score lookup defaults that
// single candidate to 0 instead of failing the list.
func (s *ConnectionService) Suggestions(ctx context.Context, userID, query string) ([]Suggestion, error) {
	self, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	corpus, err := s.UserRepo.FindAll()
	if err != nil {
		return nil, err
	}

	filtered := FilterSuggestions(*self, corpus, query)

	suggestions := make([]Suggestion, 0, len(filtered))
	for _, candidate := range filtered {
		avg, err := s.ExamRepo.AverageScore(candidate.ID)
		if err != nil {
			logger.Log.Warn("stats fetch failed for suggestion, defaulting score",
				zap.String("userId", candidate.ID), zap.Error(err))
			avg = 0
		}
		suggestions = append(suggestions, Suggestion{
			User:       candidate.Public(),
			IsFavorite: self.Favorites.Contains(candidate.ID),
			AvgScore:   avg,
		})
	}

	return suggestions, nil
}

// FavoriteUsers resolves the caller's favorites list to users. Dangling ids
// left behind by deleted accounts are silently filtered out — referential
// integrity is not enforced on write.
func (s *ConnectionService) FavoriteUsers(userID string) ([]model.User, error) {
	self, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	favorites := make([]model.User, 0, len(self.Favorites))
	for _, id := range self.Favorites {
		user, err := s.UserRepo.FindByID(id)
		if err != nil {
			continue
		}
		favorites = append(favorites, user.Public())
	}
	return favorites, nil
}

// ToggleFavorite adds or removes targetID from the caller's favorites and
// returns the updated user. The relation is directed: nothing changes on the
// target's side.
func (s *ConnectionService) ToggleFavorite(userID, targetID string) (*model.User, error) {
	if userID == targetID {
		return nil, util.ErrSelfFavorite
	}

	self, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if self.Favorites.Contains(targetID) {
		next := make(model.StringList, 0, len(self.Favorites)-1)
		for _, id := range self.Favorites {
			if id != targetID {
				next = append(next, id)
			}
		}
		self.Favorites = next
	} else {
		self.Favorites = append(self.Favorites, targetID)
	}

	if err := s.UserRepo.UpdateFavorites(userID, self.Favorites); err != nil {
		return nil, err
	}
	return self, nil
}

func (s *ConnectionService) Vocabulary(ctx context.Context) ([]string, error) {
	return s.InterestRepo.FindAllNames(ctx)
}

// SuggestInterests matches a typed prefix against the shared tag vocabulary.
func (s *ConnectionService) SuggestInterests(ctx context.Context, input string) ([]string, error) {
	vocabulary, err := s.InterestRepo.FindAllNames(ctx)
	if err != nil {
		return nil, err
	}
	return SuggestTags(input, vocabulary), nil
}
