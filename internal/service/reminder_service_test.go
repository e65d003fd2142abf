package service

import (
	"errors"
	"testing"

	"careerready_backend/internal/model"
	"careerready_backend/internal/util"
)

func TestValidateRecurrence(t *testing.T) {
	cases := []struct {
		name  string
		input ReminderInput
		ok    bool
	}{
		{"weekly", ReminderInput{Time: "07:30", Days: model.IntList{1, 3, 5}}, true},
		{"one-shot", ReminderInput{Time: "23:59", Date: "2026-09-01"}, true},
		{"neither", ReminderInput{Time: "07:30"}, false},
		{"both", ReminderInput{Time: "07:30", Days: model.IntList{1}, Date: "2026-09-01"}, false},
		{"bad time", ReminderInput{Time: "24:00", Days: model.IntList{1}}, false},
		{"bad time format", ReminderInput{Time: "7:30", Days: model.IntList{1}}, false},
		{"day out of range", ReminderInput{Time: "07:30", Days: model.IntList{7}}, false},
		{"negative day", ReminderInput{Time: "07:30", Days: model.IntList{-1}}, false},
		{"bad date", ReminderInput{Time: "07:30", Date: "01-09-2026"}, false},
		{"impossible date", ReminderInput{Time: "07:30", Date: "2026-02-30"}, false},
	}

	for _, tc := range cases {
		err := validateRecurrence(&tc.input)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, util.ErrInvalidRecurrence) {
			t.Errorf("%s: expected ErrInvalidRecurrence, got %v", tc.name, err)
		}
	}
}
