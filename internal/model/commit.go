package model

// Commit is one day of the pending submission as it goes on the wire.
type Commit struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Submission is the verified snapshot staged for a push.
type Submission struct {
	Commits []Commit `json:"commits"`
	Total   int      `json:"total"`
}

// Empty reports whether there is nothing staged.
func (s Submission) Empty() bool {
	return len(s.Commits) == 0
}

// BuildSubmission stages every positive day. The first day holding exactly
// placeholder is rewritten to maxCount; later ones pass through unchanged.
// found reports whether the placeholder occurred at all.
func BuildSubmission(records []DayRecord, placeholder, maxCount int) (sub Submission, found bool) {
	for _, r := range records {
		if r.Count <= 0 {
			continue
		}
		count := r.Count
		if !found && count == placeholder {
			found = true
			count = maxCount
		}
		sub.Commits = append(sub.Commits, Commit{
			Date:  FormatCommitDate(r.Date),
			Count: count,
		})
		sub.Total += count
	}
	return sub, found
}
