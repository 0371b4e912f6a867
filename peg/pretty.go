package peg

import (
	"bytes"
	"io"
)

// Pretty returns a human-readable string of a Node and the subtree beneath
// it. The output looks like:
// 	name{
// 		"leaf text",
// 		other{"nested"},
// 	}
func Pretty(n *Node) string {
	b := bytes.NewBuffer(nil)
	PrettyWrite(b, n)
	return b.String()
}

// PrettyWrite is like Pretty but outputs to an io.Writer.
func PrettyWrite(w io.Writer, n *Node) error {
	return prettyWrite(w, "", n)
}

func prettyWrite(w io.Writer, tab string, n *Node) error {
	if _, err := io.WriteString(w, tab); err != nil {
		return err
	}
	if len(n.Kids) == 0 {
		if n.Name != "" {
			if _, err := io.WriteString(w, n.Name+"("); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `"`+n.Text+`"`); err != nil {
			return err
		}
		if n.Name != "" {
			if _, err := io.WriteString(w, ")"); err != nil {
				return err
			}
		}
		return nil
	}
	if _, err := io.WriteString(w, n.Name); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	if len(n.Kids) == 1 && len(n.Kids[0].Kids) == 0 {
		if err := prettyWrite(w, "", n.Kids[0]); err != nil {
			return err
		}
		_, err := io.WriteString(w, "}")
		return err
	}
	for _, k := range n.Kids {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := prettyWrite(w, tab+"\t", k); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ","); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n"+tab+"}")
	return err
}
