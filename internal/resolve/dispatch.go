package resolve

import (
	"fmt"
	"sort"
)

// tagTable maps values of a discriminant field to concrete type names.
type tagTable struct {
	tagField string
	mapping  map[string]string
}

// Fixed discriminant-tag dispatch tables. Tag values are produced by the
// persistence layer; concrete names must exist in the composed schema.
var tagTables = map[string]tagTable{
	"StockMovementItem": {
		tagField: "type",
		mapping: map[string]string{
			"ADJUSTMENT":   "StockAdjustment",
			"ALLOCATION":   "Allocation",
			"CANCELLATION": "Cancellation",
			"RELEASE":      "Release",
			"SALE":         "Sale",
		},
	},
	"CustomFieldConfig": {
		tagField: "type",
		mapping: map[string]string{
			"string":       "StringCustomFieldConfig",
			"localeString": "LocaleStringCustomFieldConfig",
			"int":          "IntCustomFieldConfig",
			"float":        "FloatCustomFieldConfig",
			"boolean":      "BooleanCustomFieldConfig",
			"datetime":     "DateTimeCustomFieldConfig",
			"relation":     "RelationCustomFieldConfig",
		},
	},
}

// structuralProbe decides by presence of a distinguishing property when the
// value carries no discriminant tag.
type structuralProbe struct {
	probes []fieldProbe
}

type fieldProbe struct {
	field    string
	concrete string
}

func (p structuralProbe) targets() []string {
	var out []string
	for _, probe := range p.probes {
		out = append(out, probe.concrete)
	}
	return out
}

// Fixed structural-probe dispatch tables. Probes are checked in order; the
// first present field wins.
var structuralProbes = map[string]structuralProbe{
	"SearchResultPrice": {
		probes: []fieldProbe{
			{field: "min", concrete: "PriceRange"},
			{field: "value", concrete: "SinglePrice"},
		},
	},
}

func tagResolver(abstractType string, table tagTable) Resolver {
	return func(value any) (string, error) {
		obj, err := asObject(abstractType, value)
		if err != nil {
			return "", err
		}
		tag, ok := obj[table.tagField].(string)
		if !ok {
			return "", &UnresolvedAbstractTypeError{
				Type:   abstractType,
				Reason: fmt.Sprintf("value carries no %q discriminant", table.tagField),
			}
		}
		concrete, ok := table.mapping[tag]
		if !ok {
			return "", &UnresolvedAbstractTypeError{
				Type:   abstractType,
				Reason: fmt.Sprintf("discriminant %s=%q matches no concrete type (known: %v)", table.tagField, tag, sortedTags(table.mapping)),
			}
		}
		return concrete, nil
	}
}

func probeResolver(abstractType string, probe structuralProbe) Resolver {
	return func(value any) (string, error) {
		obj, err := asObject(abstractType, value)
		if err != nil {
			return "", err
		}
		for _, p := range probe.probes {
			if _, ok := obj[p.field]; ok {
				return p.concrete, nil
			}
		}
		return "", &UnresolvedAbstractTypeError{
			Type:   abstractType,
			Reason: "value carries none of the distinguishing fields",
		}
	}
}

// identityResolver returns the type name carried on the value. Error-result
// values carry their concrete name in __typename; when a result union has a
// single non-error member, untagged values resolve to it.
func identityResolver(abstractType string, members []string) Resolver {
	memberSet := make(map[string]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}
	return func(value any) (string, error) {
		obj, err := asObject(abstractType, value)
		if err != nil {
			return "", err
		}
		name, ok := obj["__typename"].(string)
		if !ok {
			return "", &UnresolvedAbstractTypeError{Type: abstractType, Reason: "value carries no __typename"}
		}
		if len(memberSet) > 0 && !memberSet[name] {
			return "", &UnresolvedAbstractTypeError{
				Type:   abstractType,
				Reason: fmt.Sprintf("%q is not a possible type", name),
			}
		}
		return name, nil
	}
}

func sortedTags(mapping map[string]string) []string {
	tags := make([]string, 0, len(mapping))
	for tag := range mapping {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
