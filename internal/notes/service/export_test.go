package service

func (s *AuthService) MissingUserHash() string { return s.dummyHash }
