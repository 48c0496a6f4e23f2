package ops

// PrintAll writes every record with its current index.
func PrintAll(s *Session) error {
	if err := s.Processing.PrintAll(); err != nil {
		s.log.Error("print failed", "error", err)
		return err
	}
	return nil
}
