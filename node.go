package modeldesc

// NodeClass describes the shape a node of a given element kind carries.
// The class is a fixed function of the element kind; a node never holds
// children that its class does not provide for.
type NodeClass int

const (
	// ClassElement is a leaf: attributes only.
	ClassElement NodeClass = iota
	// ClassListElement carries an ordered run of homogeneous children.
	ClassListElement
	// ClassType carries exactly one type-spec child.
	ClassType
	// ClassScalarVariable carries one type-spec child and an optional
	// direct-dependency list.
	ClassScalarVariable
	// ClassCoSimulation carries a capabilities child and, for the
	// tool-hosted variant, a model descriptor child.
	ClassCoSimulation
	// ClassModelDescription is the document root with its six optional
	// sub-trees.
	ClassModelDescription
)

// Class reports the node shape for an element kind.
func (e Elm) Class() NodeClass {
	switch e {
	case ElmFMIModelDescription:
		return ClassModelDescription
	case ElmType:
		return ClassType
	case ElmScalarVariable:
		return ClassScalarVariable
	case ElmCoSimulationStandAlone, ElmCoSimulationTool:
		return ClassCoSimulation
	case ElmBaseUnit, ElmEnumerationType, ElmTool, ElmUnitDefinitions,
		ElmTypeDefinitions, ElmVendorAnnotations, ElmModelVariables,
		ElmDirectDependency, ElmModel:
		return ClassListElement
	default:
		return ClassElement
	}
}

// Attr is one attribute of a tree node. The name is stored as its
// vocabulary handle, so two attributes with the same logical name always
// compare identical; only the value is owned per node.
type Attr struct {
	Name  Att
	Value string
}

// Node is a node of the parsed model description tree.
type Node interface {
	// Kind reports the element kind of the node.
	Kind() Elm
	// Attribute looks up an attribute value by its vocabulary handle.
	// The second return is false when the attribute is absent.
	Attribute(Att) (string, bool)
	// Attributes returns the attribute list in document order.
	Attributes() []Attr
}

// Element is the attribute-only base shared by all node kinds, and the
// node type for leaf elements.
type Element struct {
	kind  Elm
	attrs []Attr
}

func (e *Element) Kind() Elm {
	return e.kind
}

func (e *Element) Attributes() []Attr {
	return e.attrs
}

// Attribute performs the identity-based lookup: handles are compared,
// never name text.
func (e *Element) Attribute(a Att) (string, bool) {
	for _, at := range e.attrs {
		if at.Name == a {
			return at.Value, true
		}
	}
	return "", false
}

// ListElement holds an ordered run of homogeneous children. The child
// slice is non-nil but possibly empty once the element has been reduced.
type ListElement struct {
	Element
	children []Node
}

func (l *ListElement) Children() []Node {
	return l.children
}

// Type is a user-named declared type; its type-spec is one of RealType,
// IntegerType, BooleanType, StringType or EnumerationType.
type Type struct {
	Element
	typeSpec Node
}

func (t *Type) TypeSpec() Node {
	return t.typeSpec
}

// ScalarVariable declares one model variable. The type-spec is one of
// Real, Integer, Boolean, String or Enumeration. The dependency list is
// nil when no DirectDependency element was present, and non-nil but
// possibly empty when an empty one was.
type ScalarVariable struct {
	Element
	typeSpec     *Element
	dependencies []*Element
}

func (v *ScalarVariable) TypeSpec() *Element {
	return v.typeSpec
}

// DirectDependencies returns the names of the inputs this variable
// directly depends on, or nil when no DirectDependency element was
// declared. Only meaningful for outputs.
func (v *ScalarVariable) DirectDependencies() []string {
	if v.dependencies == nil {
		return nil
	}
	names := make([]string, 0, len(v.dependencies))
	for _, dep := range v.dependencies {
		value, _ := dep.Attribute(AttInput)
		names = append(names, value)
	}
	return names
}

// CoSimulation is either the stand-alone or the tool-hosted
// co-simulation block; only the latter carries a model descriptor.
type CoSimulation struct {
	Element
	capabilities *Element
	model        *ListElement
}

func (c *CoSimulation) Capabilities() *Element {
	return c.capabilities
}

// Model returns the model descriptor list of a CoSimulation_Tool block,
// or nil for the stand-alone variant.
func (c *CoSimulation) Model() *ListElement {
	return c.model
}

// ModelDescription is the document root. Each sub-tree accessor returns
// nil when the corresponding block was absent from the document; list
// accessors return a non-nil empty slice when the block was present but
// empty.
type ModelDescription struct {
	Element
	unitDefinitions   []*ListElement
	typeDefinitions   []*Type
	defaultExperiment *Element
	vendorAnnotations []*ListElement
	modelVariables    []*ScalarVariable
	coSimulation      *CoSimulation
}

func (md *ModelDescription) UnitDefinitions() []*ListElement {
	return md.unitDefinitions
}

func (md *ModelDescription) TypeDefinitions() []*Type {
	return md.typeDefinitions
}

func (md *ModelDescription) DefaultExperiment() *Element {
	return md.defaultExperiment
}

func (md *ModelDescription) VendorAnnotations() []*ListElement {
	return md.vendorAnnotations
}

func (md *ModelDescription) ModelVariables() []*ScalarVariable {
	return md.modelVariables
}

func (md *ModelDescription) CoSimulation() *CoSimulation {
	return md.coSimulation
}

// enumAtts are the attributes whose values must be vocabulary enum
// literals. They are checked at construction time so that an illegal
// literal fails the parse instead of surfacing only on the eventual
// accessor call.
var enumAtts = map[Att]struct{}{
	AttVariability:              {},
	AttCausality:                {},
	AttAlias:                    {},
	AttVariableNamingConvention: {},
}

type rawAttr struct {
	name  string
	value string
}

// newNode allocates a node of the shape dictated by the element kind and
// canonicalizes its attribute list. An unrecognized attribute name or an
// illegal enum literal is fatal to the parse.
func newNode(kind Elm, raw []rawAttr) (Node, error) {
	attrs, err := canonicalizeAttrs(raw)
	if err != nil {
		return nil, err
	}
	base := Element{kind: kind, attrs: attrs}
	switch kind.Class() {
	case ClassListElement:
		return &ListElement{Element: base}, nil
	case ClassType:
		return &Type{Element: base}, nil
	case ClassScalarVariable:
		return &ScalarVariable{Element: base}, nil
	case ClassCoSimulation:
		return &CoSimulation{Element: base}, nil
	case ClassModelDescription:
		return &ModelDescription{Element: base}, nil
	default:
		return &base, nil
	}
}

func canonicalizeAttrs(raw []rawAttr) ([]Attr, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	attrs := make([]Attr, 0, len(raw))
	for _, ra := range raw {
		a := LookupAttribute(ra.name)
		if a == AttInvalid {
			return nil, ErrUnknownName{Kind: "attribute", Name: ra.name}
		}
		if _, ok := enumAtts[a]; ok {
			if LookupEnum(ra.value) == EnuInvalid {
				return nil, ErrUnknownName{Kind: "enum value", Name: ra.value}
			}
		}
		attrs = append(attrs, Attr{Name: a, Value: ra.value})
	}
	return attrs, nil
}
