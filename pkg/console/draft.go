package console

import (
	"bytes"
	"fmt"

	"github.com/pixelvide/mailto-go/pkg/compose"
	"github.com/pixelvide/mailto-go/pkg/content"
	"github.com/pixelvide/mailto-go/pkg/mailto"
	"github.com/spf13/cobra"
)

// draftOptions are the flags shared by commands that take a draft.
type draftOptions struct {
	to        []string
	cc        []string
	bcc       []string
	subject   string
	text      string
	textFile  string
	treeFile  string
	draftFile string
	obfuscate bool
}

func (o *draftOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArrayVar(&o.to, "to", nil, "Recipient address (repeatable, comma-separated allowed)")
	f.StringArrayVar(&o.cc, "cc", nil, "Carbon copy address (repeatable, comma-separated allowed)")
	f.StringArrayVar(&o.bcc, "bcc", nil, "Blind carbon copy address (repeatable, comma-separated allowed)")
	f.StringVarP(&o.subject, "subject", "s", "", "Message subject")
	f.StringVarP(&o.text, "text", "t", "", "Message body as free text")
	f.StringVar(&o.textFile, "text-file", "", "Read the free text body from `file` (- for stdin)")
	f.StringVar(&o.treeFile, "tree", "", "Read a JSON body tree from `file` (- for stdin)")
	f.StringVar(&o.draftFile, "draft", "", "Read a whole JSON draft from `file` (- for stdin)")
	f.BoolVar(&o.obfuscate, "obfuscate", false, "Hide the address from the rendered anchor")

	cmd.MarkFlagsMutuallyExclusive("text", "text-file", "tree", "draft")
}

// draft assembles the draft described by the flags. obfuscate is the
// configured default binding mode.
func (o *draftOptions) draft(cmd *cobra.Command, obfuscate bool) (compose.Draft, error) {
	if o.draftFile != "" {
		data, err := readInput(cmd, o.draftFile)
		if err != nil {
			return compose.Draft{}, err
		}
		d, err := compose.DecodeDraft(bytes.NewReader(data))
		if err != nil {
			return compose.Draft{}, err
		}
		d.Obfuscate = d.Obfuscate || o.obfuscate || obfuscate
		return d, nil
	}

	d := compose.Draft{
		To:        addresses(o.to),
		Cc:        addresses(o.cc),
		Bcc:       addresses(o.bcc),
		Subject:   o.subject,
		Text:      o.text,
		Obfuscate: o.obfuscate || obfuscate,
	}

	switch {
	case o.treeFile != "":
		data, err := readInput(cmd, o.treeFile)
		if err != nil {
			return compose.Draft{}, err
		}
		body, err := content.Decode(data)
		if err != nil {
			return compose.Draft{}, fmt.Errorf("%s: %w", o.treeFile, err)
		}
		d.Body = body
	case o.textFile != "":
		data, err := readInput(cmd, o.textFile)
		if err != nil {
			return compose.Draft{}, err
		}
		d.Text = string(data)
	}

	return d, d.Validate()
}

func addresses(values []string) compose.AddressList {
	var out compose.AddressList
	for _, v := range values {
		for _, addr := range mailto.ParseAddressList(v) {
			if addr != "" {
				out = append(out, addr)
			}
		}
	}
	return out
}
