package dataset

import (
	"fmt"
	"io"
)

// WriteReport prints one line per stored pair, numbered from 1.
func WriteReport(w io.Writer, d *Dataset) error {
	for i := 0; i < d.Len(); i++ {
		x, y := d.Sample(i)
		if _, err := fmt.Fprintf(w, "%d : (size, price) : (%g, %g)\n", i+1, x, y); err != nil {
			return err
		}
	}
	return nil
}
