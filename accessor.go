package modeldesc

import "strconv"

// ValueStatus reports how an attribute lookup went: the attribute was
// present and parsed (ValueDefined), absent (ValueMissing), or present
// but not parseable as the requested type (ValueIllegal).
type ValueStatus int

const (
	ValueDefined ValueStatus = iota
	ValueMissing
	ValueIllegal
)

// UndefinedValueReference is the reserved value reference meaning "no
// variable".
const UndefinedValueReference uint32 = 0xFFFFFFFF

// GetString returns the raw attribute value. The second return is false
// when the attribute is absent.
func GetString(n Node, a Att) (string, bool) {
	return n.Attribute(a)
}

// GetDouble parses the attribute as a float64.
func GetDouble(n Node, a Att) (float64, ValueStatus) {
	value, ok := n.Attribute(a)
	if !ok {
		return 0, ValueMissing
	}
	d, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, ValueIllegal
	}
	return d, ValueDefined
}

// GetInt parses the attribute as an int. It also serves enumeration
// values of user-defined enumeration types, which are integers.
func GetInt(n Node, a Att) (int, ValueStatus) {
	value, ok := n.Attribute(a)
	if !ok {
		return 0, ValueMissing
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, ValueIllegal
	}
	return i, ValueDefined
}

// GetUint parses the attribute as an unsigned 32-bit integer, the width
// of a value reference.
func GetUint(n Node, a Att) (uint32, ValueStatus) {
	value, ok := n.Attribute(a)
	if !ok {
		return 0, ValueMissing
	}
	u, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, ValueIllegal
	}
	return uint32(u), ValueDefined
}

// GetBoolean parses the attribute as a boolean. Only the literals "true"
// and "false" are legal.
func GetBoolean(n Node, a Att) (bool, ValueStatus) {
	value, ok := n.Attribute(a)
	if !ok {
		return false, ValueMissing
	}
	switch value {
	case "true":
		return true, ValueDefined
	case "false":
		return false, ValueDefined
	}
	return false, ValueIllegal
}

// GetEnum returns the attribute's enum literal handle. When the
// attribute is absent the per-attribute schema default is returned with
// status ValueMissing, so callers can still tell "defaulted" from
// "explicitly set". Attributes without a schema default yield EnuInvalid
// when absent.
func GetEnum(n Node, a Att) (Enu, ValueStatus) {
	value, ok := n.Attribute(a)
	if !ok {
		switch a {
		case AttVariableNamingConvention:
			return EnuFlat, ValueMissing
		case AttVariability:
			return EnuContinuous, ValueMissing
		case AttCausality:
			return EnuInternal, ValueMissing
		case AttAlias:
			return EnuNoAlias, ValueMissing
		default:
			return EnuInvalid, ValueMissing
		}
	}
	id := LookupEnum(value)
	if id == EnuInvalid {
		return EnuInvalid, ValueIllegal
	}
	return id, ValueDefined
}

// ---------------------------------------------------------------------
// Convenience accessors for attributes the schema marks required. They
// are only safe on a tree that passed validation: a missing required
// attribute is a contract breach and panics.

func mustString(n Node, a Att) string {
	value, ok := n.Attribute(a)
	if !ok {
		panic("modeldesc: required attribute " + a.String() + " missing on " + n.Kind().String())
	}
	return value
}

// Name returns the element's name attribute. name is required on
// ScalarVariable, Type, Item, Annotation and Tool.
func (e *Element) Name() string {
	return mustString(e, AttName)
}

// ModelIdentifier returns the root's required modelIdentifier attribute.
func (md *ModelDescription) ModelIdentifier() string {
	return mustString(md, AttModelIdentifier)
}

// NumberOfStates returns the root's required numberOfContinuousStates
// attribute.
func (md *ModelDescription) NumberOfStates() int {
	n, vs := GetUint(md, AttNumberOfContinuousStates)
	if vs != ValueDefined {
		panic("modeldesc: required attribute numberOfContinuousStates missing or illegal")
	}
	return int(n)
}

// NumberOfEventIndicators returns the root's required
// numberOfEventIndicators attribute.
func (md *ModelDescription) NumberOfEventIndicators() int {
	n, vs := GetInt(md, AttNumberOfEventIndicators)
	if vs != ValueDefined {
		panic("modeldesc: required attribute numberOfEventIndicators missing or illegal")
	}
	return n
}

// ValueReference returns the variable's required valueReference
// attribute. The reference is unique only within one base type, and may
// be UndefinedValueReference.
func (v *ScalarVariable) ValueReference() uint32 {
	vr, vs := GetUint(v, AttValueReference)
	if vs != ValueDefined {
		panic("modeldesc: required attribute valueReference missing or illegal")
	}
	return vr
}

// Causality returns input, output, internal or none; internal when the
// attribute is absent.
func (v *ScalarVariable) Causality() Enu {
	e, _ := GetEnum(v, AttCausality)
	return e
}

// Variability returns constant, parameter, discrete or continuous;
// continuous when the attribute is absent.
func (v *ScalarVariable) Variability() Enu {
	e, _ := GetEnum(v, AttVariability)
	return e
}

// Alias returns noAlias, alias or negatedAlias; noAlias when the
// attribute is absent.
func (v *ScalarVariable) Alias() Enu {
	e, _ := GetEnum(v, AttAlias)
	return e
}

// ---------------------------------------------------------------------
// Root-level queries

// VariableByName looks a variable up by its name, which is unique within
// one model description. Returns nil when not found.
func (md *ModelDescription) VariableByName(name string) *ScalarVariable {
	for _, sv := range md.modelVariables {
		if sv.Name() == name {
			return sv
		}
	}
	return nil
}

// SameBaseType reports whether two type-spec kinds share a base type.
// Enumeration and Integer share one; Real, String and Boolean each have
// their own.
func SameBaseType(t1, t2 Elm) bool {
	return t1 == t2 ||
		(t1 == ElmEnumeration && t2 == ElmInteger) ||
		(t2 == ElmEnumeration && t1 == ElmInteger)
}

// Variable looks a variable up by value reference and base type. Since
// that pair is not a unique key, the match may be an alias. Returns nil
// when not found or when vr is UndefinedValueReference.
func (md *ModelDescription) Variable(vr uint32, base Elm) *ScalarVariable {
	if vr == UndefinedValueReference {
		return nil
	}
	for _, sv := range md.modelVariables {
		if SameBaseType(base, sv.typeSpec.Kind()) && sv.ValueReference() == vr {
			return sv
		}
	}
	return nil
}

// NonAliasVariable is Variable restricted to variables that are not
// declared as an alias of another one.
func (md *ModelDescription) NonAliasVariable(vr uint32, base Elm) *ScalarVariable {
	if vr == UndefinedValueReference {
		return nil
	}
	for _, sv := range md.modelVariables {
		if SameBaseType(base, sv.typeSpec.Kind()) && sv.ValueReference() == vr && sv.Alias() == EnuNoAlias {
			return sv
		}
	}
	return nil
}

// DeclaredType looks a type definition up by name. Returns nil for the
// empty name or when no type of that name exists.
func (md *ModelDescription) DeclaredType(name string) *Type {
	if name == "" {
		return nil
	}
	for _, tp := range md.typeDefinitions {
		if tp.Name() == name {
			return tp
		}
	}
	return nil
}

// ResolveString returns an attribute from a type-spec, falling back to
// the type-spec of its declared type when the attribute is absent
// locally. The chain is exactly two levels deep.
func (md *ModelDescription) ResolveString(spec Node, a Att) (string, bool) {
	if value, ok := spec.Attribute(a); ok {
		return value, true
	}
	name, _ := spec.Attribute(AttDeclaredType)
	tp := md.DeclaredType(name)
	if tp == nil {
		return "", false
	}
	return tp.typeSpec.Attribute(a)
}

// Description returns the variable's description, falling back to the
// description of its declared type.
func (md *ModelDescription) Description(v *ScalarVariable) (string, bool) {
	if value, ok := v.Attribute(AttDescription); ok {
		return value, true
	}
	name, _ := v.typeSpec.Attribute(AttDeclaredType)
	tp := md.DeclaredType(name)
	if tp == nil {
		return "", false
	}
	return tp.Attribute(AttDescription)
}

// VariableAttributeString returns an attribute from the type-spec of the
// variable given by value reference and base type, including the default
// provided by its declared type, if any.
func (md *ModelDescription) VariableAttributeString(vr uint32, base Elm, a Att) (string, bool) {
	sv := md.Variable(vr, base)
	if sv == nil {
		return "", false
	}
	return md.ResolveString(sv.typeSpec, a)
}

// VariableAttributeDouble is VariableAttributeString parsed as a
// float64.
func (md *ModelDescription) VariableAttributeDouble(vr uint32, base Elm, a Att) (float64, ValueStatus) {
	value, ok := md.VariableAttributeString(vr, base, a)
	if !ok {
		return 0, ValueMissing
	}
	d, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, ValueIllegal
	}
	return d, ValueDefined
}

// Nominal returns the nominal value of the Real variable given by value
// reference, from the variable or its declared type. Returns 1.0 when no
// nominal value is defined.
func (md *ModelDescription) Nominal(vr uint32) float64 {
	nominal, vs := md.VariableAttributeDouble(vr, ElmReal, AttNominal)
	if vs != ValueDefined {
		return 1.0
	}
	return nominal
}
