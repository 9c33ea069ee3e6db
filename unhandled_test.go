package exhaust

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type UnhandledEntrySuite struct {
	suite.Suite
}

func TestUnhandledEntrySuite(t *testing.T) {
	suite.Run(t, new(UnhandledEntrySuite))
}

func (s *UnhandledEntrySuite) TestWithoutMessageIsSingleton() {
	s.Assert().Same(Unhandled(), Unhandled())
	s.Assert().Same(Unhandled(), NewUnhandled(""))
}

func (s *UnhandledEntrySuite) TestWithMessageIsNewInstance() {
	a := NewUnhandled("Test message")
	b := NewUnhandled("Test message")

	s.Assert().NotSame(a, b)
	s.Assert().NotSame(Unhandled(), a)
	s.Assert().Equal("Test message", a.Message())
}

func (s *UnhandledEntrySuite) TestErrReturnsNewError() {
	u := Unhandled()
	first := u.Err("foo")
	second := u.Err("foo")

	s.Require().Error(first)
	s.Assert().NotSame(first, second)
	s.Assert().ErrorIs(first, ErrUnhandledValue)
}

func (s *UnhandledEntrySuite) TestErrMessage() {
	tests := map[string]struct {
		token *UnhandledEntry
		want  string
	}{
		"without message": {Unhandled(), "Unhandled value: foo"},
		"with message":    {NewUnhandled("Test message"), "Unhandled value: foo - Test message"},
	}

	for name, tc := range tests {
		s.Run(name, func() {
			s.Assert().EqualError(tc.token.Err("foo"), tc.want)
		})
	}
}

func (s *UnhandledEntrySuite) TestErrIsTyped() {
	var uerr *UnhandledValueError
	s.Require().True(errors.As(NewUnhandled("later").Err("foo"), &uerr))
	s.Assert().Equal("foo", uerr.Value)
	s.Assert().Equal("later", uerr.Message)
}

func (s *UnhandledEntrySuite) TestIsUnhandled() {
	s.Assert().True(IsUnhandled(Unhandled()))
	s.Assert().True(IsUnhandled(NewUnhandled("Test message")))

	// A look-alike with the same message is not a token.
	s.Assert().False(IsUnhandled(struct{ message string }{"Test message"}))
	s.Assert().False(IsUnhandled((*UnhandledEntry)(nil)))
	s.Assert().False(IsUnhandled(nil))
	s.Assert().False(IsUnhandled("unhandled"))
}
