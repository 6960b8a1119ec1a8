package operator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/contactdesk/internal/shared"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

var errPasswordMismatch = errors.New("passwords do not match")

// promptPassword reads a secret twice without echo and returns it once both
// entries agree. Intermediate buffers are wiped; the caller wipes the result.
func promptPassword(w io.Writer) ([]byte, error) {
	fmt.Fprint(w, "Enter password: ")
	first, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	if len(first) == 0 {
		return nil, errors.New("empty password")
	}

	fmt.Fprint(w, "Repeat password: ")
	second, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	defer shared.WipeByteArray(second)
	if err != nil {
		shared.WipeByteArray(first)
		return nil, err
	}

	if !bytes.Equal(first, second) {
		shared.WipeByteArray(first)
		return nil, errPasswordMismatch
	}
	return first, nil
}
