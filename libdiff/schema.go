package libdiff

import "github.com/signadot/spatch/ir"

const (
	PropertiesField = "properties"
	ItemsField      = "items"
	IndexKeyField   = "indexKey"
)

// propertySchema returns schema.properties[key], or nil.
func propertySchema(schema *ir.Node, key string) *ir.Node {
	props := member(schema, PropertiesField)
	return member(props, key)
}

func itemsSchema(schema *ir.Node) *ir.Node {
	return member(schema, ItemsField)
}

// indexKey returns the string value of schema.indexKey.
func indexKey(schema *ir.Node) (string, bool) {
	k := member(schema, IndexKeyField)
	if k == nil || k.Type != ir.StringType {
		return "", false
	}
	return k.String, true
}

func member(schema *ir.Node, key string) *ir.Node {
	if schema == nil || schema.Type != ir.ObjectType {
		return nil
	}
	return ir.Get(schema, key)
}
