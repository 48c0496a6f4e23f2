package ops

// UpdateInput contains parameters for the Update operation.
type UpdateInput struct {
	Index int    // current position in the record list
	Text  string // required, 1..MaxChars runes
}

// UpdateOutput contains the result of the Update operation.
type UpdateOutput struct {
	ID    string
	Index int
}

// Update replaces the text of the record at Index in place.
func Update(s *Session, input UpdateInput) (*UpdateOutput, error) {
	if err := s.Processing.Update(input.Index, input.Text); err != nil {
		s.log.Debug("update rejected", "index", input.Index, "error", err)
		return nil, err
	}

	m, err := s.Processing.At(input.Index)
	if err != nil {
		return nil, err
	}

	s.log.Debug("message updated", "id", m.ID, "index", input.Index)

	return &UpdateOutput{
		ID:    m.ID,
		Index: input.Index,
	}, nil
}
