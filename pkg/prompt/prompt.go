// Package prompt supplies the interactive disambiguation channel used
// when a city name exists in more than one country. The resolver only
// sees the Prompter interface, so tests can substitute a scripted one.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Prompter interface {
	Country(city string) (string, error)
}

type Stdio struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Country asks the operator which country the ambiguous city belongs to
// and blocks until a line of input arrives. No timeout is applied.
func (s *Stdio) Country(city string) (string, error) {
	fmt.Fprintf(s.out, "Multiple cities of %s have been found.\nPlease specify a country: ", city)

	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
