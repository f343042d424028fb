package source

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/ginjaninja78/theatre-statements/internal/types"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func decodeYAMLPlays(path string) (types.Plays, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	var plays types.Plays
	if err := yaml.Unmarshal(data, &plays); err != nil {
		return nil, errors.Wrap(err, "parsing YAML")
	}
	return plays, nil
}

func decodeJSONPlays(path string) (types.Plays, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	var plays types.Plays
	if err := json.Unmarshal(data, &plays); err != nil {
		return nil, errors.Wrap(err, "parsing JSON")
	}
	return plays, nil
}

func decodeYAMLInvoice(path string) (types.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Invoice{}, errors.Wrap(err, "reading file")
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.Invoice{}, errors.Wrap(err, "parsing YAML")
	}
	if len(doc.Content) == 0 {
		return types.Invoice{}, errors.New("parsing YAML: empty document")
	}

	if doc.Content[0].Kind == yaml.SequenceNode {
		var invoices []types.Invoice
		if err := doc.Decode(&invoices); err != nil {
			return types.Invoice{}, errors.Wrap(err, "parsing YAML")
		}
		return singleInvoice(invoices)
	}

	var invoice types.Invoice
	if err := doc.Decode(&invoice); err != nil {
		return types.Invoice{}, errors.Wrap(err, "parsing YAML")
	}
	return invoice, nil
}

func decodeJSONInvoice(path string) (types.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Invoice{}, errors.Wrap(err, "reading file")
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var invoices []types.Invoice
		if err := json.Unmarshal(trimmed, &invoices); err != nil {
			return types.Invoice{}, errors.Wrap(err, "parsing JSON")
		}
		return singleInvoice(invoices)
	}

	var invoice types.Invoice
	if err := json.Unmarshal(data, &invoice); err != nil {
		return types.Invoice{}, errors.Wrap(err, "parsing JSON")
	}
	return invoice, nil
}
