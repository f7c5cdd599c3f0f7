// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ik5/sndfile"
)

func runFormats(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "MAJOR\tVALUE\tEXT\tNAME")
	for _, fi := range sndfile.MajorFormats() {
		fmt.Fprintf(tw, "%v\t0x%06x\t%s\t%s\n", fi.Format.Major, fi.Format.Raw(), fi.Extension, fi.Name)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SUBTYPE\tVALUE\t\tNAME")
	for _, fi := range sndfile.Subtypes() {
		fmt.Fprintf(tw, "%v\t0x%04x\t\t%s\n", fi.Format.Subtype, fi.Format.Raw(), fi.Name)
	}

	return tw.Flush()
}
