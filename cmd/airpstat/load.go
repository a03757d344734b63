package main

import (
	"io"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/pkg/errors"

	airp "github.com/d1ced/jsonvalue_airp"
)

// load reads one JSON document from r into a value tree.
func load(r io.Reader) (airp.Value, error) {
	dec := jsontext.NewDecoder(r)
	var v airp.Value
	if err := readValue(dec, &v); err != nil {
		return airp.Value{}, err
	}
	if _, err := dec.ReadToken(); err != io.EOF {
		if err == nil {
			err = errors.New("trailing data after document")
		}
		return airp.Value{}, err
	}
	return v, nil
}

// readValue fills dst with the next value of dec. Containers are built in
// place: elements are pushed as soon as they are complete and object
// members are decoded straight into the slot At returns.
func readValue(dec *jsontext.Decoder, dst *airp.Value) error {
	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}
	switch tok.Kind() {
	case 'n':
		dst.Reset()
	case 'f', 't':
		*dst = airp.Value(airp.NewBoolean(tok.Bool()))
	case '"':
		*dst = airp.Value(airp.NewString(tok.String()))
	case '0':
		n, err := number(tok.String())
		if err != nil {
			return err
		}
		*dst = airp.Value(n)
	case '[':
		arr := airp.NewArray[airp.Value]()
		for dec.PeekKind() != ']' {
			var e airp.Value
			if err := readValue(dec, &e); err != nil {
				return errors.Wrapf(err, "index %d", arr.Len())
			}
			arr.PushBack(&e)
		}
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		*dst = airp.Value(arr)
	case '{':
		obj := airp.NewObject[airp.Value]()
		for dec.PeekKind() != '}' {
			key, err := dec.ReadToken()
			if err != nil {
				return err
			}
			// a repeated key overwrites the earlier member
			if err := readValue(dec, obj.At(key.String())); err != nil {
				return errors.Wrapf(err, "key %q", key.String())
			}
		}
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		*dst = airp.Value(obj)
	default:
		return errors.Errorf("unexpected token %s", tok.Kind())
	}
	return nil
}

// number keeps integers exact when they fit int64 or uint64 and falls back
// to float64 otherwise.
func number(text string) (airp.Number, error) {
	// -0 stays a float so the sign survives.
	if i, err := strconv.ParseInt(text, 10, 64); err == nil && (i != 0 || text[0] != '-') {
		return airp.Int(i), nil
	}
	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return airp.Uint(u), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return airp.Number{}, errors.Wrapf(err, "number %s", text)
	}
	return airp.Float(f), nil
}
