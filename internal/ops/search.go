package ops

import (
	"github.com/hpungsan/msgpipe/internal/message"
)

// SearchInput contains parameters for the Search operation.
type SearchInput struct {
	Word string // required; matched case-insensitively as a substring
}

// SearchOutput contains the result of the Search operation.
type SearchOutput struct {
	Word  string
	Items []*message.Message // in record-list order, never nil
	Total int
}

// Search scans the record list for messages containing the word.
func Search(s *Session, input SearchInput) (*SearchOutput, error) {
	items, err := s.Processing.Search(input.Word)
	if err != nil {
		return nil, err
	}

	s.log.Debug("search finished", "word", input.Word, "matches", len(items), "scanned", s.Processing.Len())

	return &SearchOutput{
		Word:  input.Word,
		Items: items,
		Total: len(items),
	}, nil
}
