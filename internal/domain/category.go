package domain

// Category tags a work item. The legacy categories map onto the five attributes.
type Category string

const (
	CategoryMental       Category = "mental"
	CategoryPhysical     Category = "physical"
	CategorySpiritual    Category = "spiritual"
	CategoryIntelligence Category = "intelligence"
	CategoryCognitive    Category = "cognitive"
	CategoryEmotional    Category = "emotional"
	CategorySocial       Category = "social"
)

// Attribute is one of the five user stats
type Attribute string

const (
	AttributePhysical  Attribute = "physical"
	AttributeCognitive Attribute = "cognitive"
	AttributeEmotional Attribute = "emotional"
	AttributeSpiritual Attribute = "spiritual"
	AttributeSocial    Attribute = "social"
)

// Attributes lists every stat in display order
var Attributes = []Attribute{
	AttributePhysical,
	AttributeCognitive,
	AttributeEmotional,
	AttributeSpiritual,
	AttributeSocial,
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	_, ok := c.attribute()
	return ok
}

// Attribute returns the stat that completions in c feed
func (c Category) Attribute() Attribute {
	a, _ := c.attribute()
	return a
}

func (c Category) attribute() (Attribute, bool) {
	switch c {
	case CategoryPhysical:
		return AttributePhysical, true
	case CategoryMental, CategoryEmotional:
		return AttributeEmotional, true
	case CategoryIntelligence, CategoryCognitive:
		return AttributeCognitive, true
	case CategorySpiritual:
		return AttributeSpiritual, true
	case CategorySocial:
		return AttributeSocial, true
	}
	return "", false
}
