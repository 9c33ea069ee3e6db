package exhaust

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

type FromJSONSuite struct {
	suite.Suite
	raw []byte
}

func (s *FromJSONSuite) SetupTest() {
	s.raw = []byte(`{
		"color": "g",
		"nothing": null,
		"count": 42,
		"flags": ["r"],
		"shape": {"color": "b", "fill": null}
	}`)
}

func TestFromJSONSuite(t *testing.T) {
	suite.Run(t, new(FromJSONSuite))
}

func (s *FromJSONSuite) TestString() {
	v, err := FromJSON[color](s.raw, "color")
	s.Require().NoError(err)
	s.Assert().Equal(Of(green), v)
}

func (s *FromJSONSuite) TestNested() {
	v, err := FromJSON[color](s.raw, "shape.color")
	s.Require().NoError(err)
	s.Assert().Equal(Of(blue), v)
}

func (s *FromJSONSuite) TestNullIsNull() {
	for _, path := range []string{"nothing", "shape.fill"} {
		v, err := FromJSON[color](s.raw, path)
		s.Require().NoError(err)
		s.Assert().True(v.IsNull(), path)
	}
}

func (s *FromJSONSuite) TestMissingIsUndefined() {
	for _, path := range []string{"missing", "shape.missing", "nothing.deeper"} {
		v, err := FromJSON[color](s.raw, path)
		s.Require().NoError(err)
		s.Assert().True(v.IsUndefined(), path)
	}
}

func (s *FromJSONSuite) TestNonStringFails() {
	for _, path := range []string{"count", "flags", "shape"} {
		_, err := FromJSON[color](s.raw, path)
		s.Assert().ErrorIs(err, ErrNotString, path)
	}
}

func (s *FromJSONSuite) TestInvalidJSON() {
	_, err := FromJSON[color]([]byte(`{not valid}`), "color")
	s.Assert().ErrorIs(err, ErrInvalidJSON)

	_, err = FromJSON[color]([]byte{}, "color")
	s.Assert().ErrorIs(err, ErrInvalidJSON)
}

func (s *FromJSONSuite) TestFromJSONResult() {
	v, err := FromJSONResult[color](gjson.Parse(`"r"`))
	s.Require().NoError(err)
	s.Assert().Equal(Of(red), v)
}

func (s *FromJSONSuite) TestFeedsDispatch() {
	m, err := NewMapper[string](Must(NewSet(red, green, blue))).
		Case(red, "Red!").
		Case(green, "Green!").
		Case(blue, "Blue!").
		Null("no color").
		Undefined("unset").
		BuildOrNullOrUndefined()
	s.Require().NoError(err)

	tests := map[string]string{
		"color":       "Green!",
		"shape.color": "Blue!",
		"nothing":     "no color",
		"missing":     "unset",
	}
	for path, want := range tests {
		v, err := FromJSON[color](s.raw, path)
		s.Require().NoError(err)

		got, err := MapOrNullOrUndefined[string](v).With(m)
		s.Require().NoError(err)
		s.Assert().Equal(want, got, path)
	}
}
