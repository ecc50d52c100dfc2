package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vk/formbridge/internal/params"
	"github.com/vk/formbridge/internal/wiretype"
)

// parseParameter turns one NAME:KIND=VALUE command-line literal into a
// typed parameter. The literal's value syntax depends on the kind:
// references are ID:ENTITYTYPE, collections are comma-separated references,
// dates are RFC 3339.
func parseParameter(literal string) (params.Parameter, error) {
	head, rawValue, ok := strings.Cut(literal, "=")
	if !ok {
		return params.Parameter{}, fmt.Errorf("invalid parameter %q: expected NAME:KIND=VALUE", literal)
	}
	name, kind, ok := strings.Cut(head, ":")
	if !ok || name == "" || kind == "" {
		return params.Parameter{}, fmt.Errorf("invalid parameter %q: expected NAME:KIND=VALUE", literal)
	}

	value, err := parseValue(wiretype.Kind(kind), rawValue)
	if err != nil {
		return params.Parameter{}, fmt.Errorf("invalid parameter %q: %w", literal, err)
	}
	return params.Parameter{Name: name, Kind: wiretype.Kind(kind), Value: value}, nil
}

func parseValue(kind wiretype.Kind, raw string) (any, error) {
	switch kind {
	case wiretype.KindString:
		return raw, nil
	case wiretype.KindInteger, wiretype.KindPicklist:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not an integer", raw)
		}
		return n, nil
	case wiretype.KindDecimal, wiretype.KindFloat, wiretype.KindMoney:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a number", raw)
		}
		return f, nil
	case wiretype.KindBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a boolean", raw)
		}
		return b, nil
	case wiretype.KindDateTime:
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("value %q is not an RFC 3339 timestamp", raw)
		}
		return t, nil
	case wiretype.KindEntity, wiretype.KindEntityReference:
		ref, err := parseRef(raw)
		if err != nil {
			return nil, err
		}
		return ref, nil
	case wiretype.KindEntityCollection:
		var refs []params.EntityRef
		for _, part := range strings.Split(raw, ",") {
			ref, err := parseRef(part)
			if err != nil {
				return nil, err
			}
			refs = append(refs, ref)
		}
		return refs, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

// parseRef parses an ID:ENTITYTYPE literal.
func parseRef(raw string) (params.EntityRef, error) {
	id, entityType, ok := strings.Cut(raw, ":")
	if !ok || id == "" || entityType == "" {
		return params.EntityRef{}, fmt.Errorf("value %q is not a reference: expected ID:ENTITYTYPE", raw)
	}
	return params.EntityRef{ID: id, EntityType: entityType}, nil
}
