package ops

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	Index int
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool
	ID      string
	Index   int
}

// Delete removes the record at Index. Later records move down one position.
func Delete(s *Session, input DeleteInput) (*DeleteOutput, error) {
	removed, err := s.Processing.Delete(input.Index)
	if err != nil {
		s.log.Debug("delete rejected", "index", input.Index, "error", err)
		return nil, err
	}

	s.log.Debug("message deleted", "id", removed.ID, "index", input.Index, "remaining", s.Processing.Len())

	return &DeleteOutput{
		Deleted: true,
		ID:      removed.ID,
		Index:   input.Index,
	}, nil
}
