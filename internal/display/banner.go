package display

import (
	"fmt"
	"os"

	"github.com/soupkitchen/dailies/internal/logging"
)

// PrintHeader prints the boxed tool header; Magenta when colors are enabled.
func PrintHeader(title string) {
	rule := "============================================================"
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, logging.Magenta)
	}
	fmt.Fprintln(os.Stdout, rule)
	fmt.Fprintln(os.Stdout, title)
	fmt.Fprintln(os.Stdout, rule)
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, logging.NC)
	}
}
