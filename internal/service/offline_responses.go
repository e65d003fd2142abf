package service

import "strings"

// offlineEntry pairs required keywords with a canned response. An entry fires
// when every keyword appears in the lowercased message.
type offlineEntry struct {
	keywords []string
	response string
}

// offlineResponses is evaluated top to bottom; the first firing entry wins.
// Order matters: more specific keyword sets must be declared before generic
// ones that would also match.
var offlineResponses = []offlineEntry{
	{
		keywords: []string{"linked", "list"},
		response: "A **linked list** is a linear data structure where elements (nodes) are connected via pointers. Each node contains:\n• Data (the value)\n• Pointer to the next node\n\n**Advantages:**\n✅ Dynamic size\n✅ Easy insertion/deletion\n\n**Disadvantages:**\n❌ No random access\n❌ Extra memory for pointers\n\n**Types:** Singly, doubly, circular linked lists. 📚",
	},
	{
		keywords: []string{"binary", "search"},
		response: "**Binary Search** finds an item in a sorted array efficiently.\n\n**Steps:**\n1. Compare target with middle\n2. If equal, found!\n3. If target < middle, search left\n4. If target > middle, search right\n\n**Time:** O(log n) ⚡\n**Requirement:** Array must be sorted! 🎯",
	},
	{
		keywords: []string{"hash"},
		response: "A **hash table** maps keys to values using a hash function.\n\n**Operations:** insert, lookup, delete — all O(1) on average.\n\n**Watch out for:**\n• Collisions (chaining or open addressing)\n• Poor hash functions degrade to O(n)\n\nGreat for caches, indexes, and deduplication. 🔑",
	},
	{
		keywords: []string{"study"},
		response: "**Proven Study Techniques:**\n\n1. **Active Recall** 🧠 - Test yourself\n2. **Spaced Repetition** 📅 - Review at intervals\n3. **Pomodoro** ⏰ - 25min focus + 5min break\n4. **Teach Others** 👥 - Explain concepts\n5. **Practice** ✍️ - Apply knowledge\n\nConsistency beats cramming! 💪",
	},
	{
		keywords: []string{"tips"},
		response: "**Proven Study Techniques:**\n\n1. **Active Recall** 🧠 - Test yourself\n2. **Spaced Repetition** 📅 - Review at intervals\n3. **Pomodoro** ⏰ - 25min focus + 5min break\n4. **Teach Others** 👥 - Explain concepts\n5. **Practice** ✍️ - Apply knowledge\n\nConsistency beats cramming! 💪",
	},
}

// SelectOfflineResponse answers a chat message from the canned table when the
// generation API is unreachable. Pure and total: the same message always
// yields the same non-empty response.
func SelectOfflineResponse(message string) string {
	lowered := strings.ToLower(message)

	for _, entry := range offlineResponses {
		fired := true
		for _, kw := range entry.keywords {
			if !strings.Contains(lowered, kw) {
				fired = false
				break
			}
		}
		if fired {
			return entry.response
		}
	}

	return "Great question! 📚\n\nI'm currently experiencing API connectivity issues, but I can still help!\n\n**For " + message + ":**\n• Break it into smaller concepts\n• Look for visual examples\n• Practice with exercises\n• Try explaining it simply\n\nPlease try again or ask about: linked lists, binary search, hash tables, study tips, or any CS topic! 😊"
}
