package greeter

import (
	"fmt"
	"io"
)

// Greeting is the fixed message written by Greet.
const Greeting = "Hello, world!"

// Greet writes the greeting followed by a single newline to w in one write.
func Greet(w io.Writer) error {
	if _, err := io.WriteString(w, Greeting+"\n"); err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	return nil
}
