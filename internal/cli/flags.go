package cli

import (
	"errors"
	"strconv"
)

var errDuplicateFlag = errors.New("flag given more than once")

// onceString is a string flag value that rejects repeated use.
type onceString struct {
	value string
	set   bool
}

func (s *onceString) Set(v string) error {
	if s.set {
		return errDuplicateFlag
	}
	s.value = v
	s.set = true
	return nil
}

func (s *onceString) String() string { return s.value }

func (s *onceString) Type() string { return "string" }

// onceBool is a boolean flag value that rejects repeated use. Register it
// with NoOptDefVal "true" so it can be given without a value.
type onceBool struct {
	value bool
	set   bool
}

func (b *onceBool) Set(v string) error {
	if b.set {
		return errDuplicateFlag
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	b.value = parsed
	b.set = true
	return nil
}

func (b *onceBool) String() string { return strconv.FormatBool(b.value) }

func (b *onceBool) Type() string { return "bool" }
