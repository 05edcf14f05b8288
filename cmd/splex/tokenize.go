package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/db47h/splex/intern"
	"github.com/db47h/splex/lexer"
	"github.com/db47h/splex/lexer/diag"
	"github.com/db47h/splex/preprocessor"
	"github.com/db47h/splex/token"
)

// tokenRecord is the serializable rendering of one scanned token, used
// for the --format yaml output.
type tokenRecord struct {
	Kind  string `yaml:"kind"`
	Pos   string `yaml:"pos"`
	Value string `yaml:"value,omitempty"`
}

func tokenizeFile(path string, r io.Reader, out, errOut io.Writer) error {
	buf, err := lexer.LoadBuffer(path, r)
	if err != nil {
		return err
	}
	file := token.NewFile(path)
	pool := intern.NewPool()
	sink := &diag.WriterSink{W: errOut, File: file}
	pp := preprocessor.New(pool, sink, nil)

	l := lexer.New(buf, file, pp, pp,
		lexer.TraceComments(traceComments),
		lexer.RequireNewdecls(requireNewdecls),
	)

	var records []tokenRecord
	for {
		t := l.Next()
		if t.Kind == token.NONE {
			for {
				mt, ok := pp.NextMacroToken()
				if !ok {
					break
				}
				records = append(records, renderToken(file, pool, &mt))
			}
			continue
		}
		records = append(records, renderToken(file, pool, t))
		if t.Kind == token.EOF {
			break
		}
	}

	if err := writeRecords(out, records); err != nil {
		return err
	}
	if sink.Count() > 0 {
		return fmt.Errorf("%d diagnostic(s) reported", sink.Count())
	}
	return nil
}

func renderToken(file *token.File, pool *intern.Pool, t *lexer.Token) tokenRecord {
	pos := file.Position(t.Range.Start.Offset)
	r := tokenRecord{Kind: t.Kind.String(), Pos: pos.String()}
	switch {
	case t.Kind == token.INTEGER_LITERAL || t.Kind == token.HEX_LITERAL || t.Kind == token.CHAR_LITERAL:
		r.Value = fmt.Sprintf("%d", t.IntValue)
	case t.Kind == token.FLOAT_LITERAL:
		r.Value = fmt.Sprintf("%g", t.FloatValue)
	case t.HasAtom:
		r.Value = pool.Lookup(t.Atom)
	}
	return r
}

func writeRecords(out io.Writer, records []tokenRecord) error {
	if outputFormat == "yaml" {
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(records)
	}
	for _, r := range records {
		if r.Value != "" {
			fmt.Fprintf(out, "%s\t%s\t%s\n", r.Pos, r.Kind, r.Value)
		} else {
			fmt.Fprintf(out, "%s\t%s\n", r.Pos, r.Kind)
		}
	}
	return nil
}
