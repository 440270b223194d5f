package infrastructure

import "sync"

type SMTPMock struct {
	calledSend bool
	address    string
	body       string
	mu         sync.Mutex
	Wg         sync.WaitGroup
}

func (s *SMTPMock) Send(address, subject, body string) error {
	defer s.Wg.Done()

	s.mu.Lock()
	s.calledSend = true
	s.address = address
	s.body = body
	s.mu.Unlock()
	return nil
}

func (s *SMTPMock) From() string {
	return "corkboard@example.com"
}

func (s *SMTPMock) CalledSend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calledSend
}

// LastMessage returns the address and body of the last email sent
func (s *SMTPMock) LastMessage() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address, s.body
}
