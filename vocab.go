package modeldesc

// The three vocabulary tables below are the single place where the
// recognized element, attribute and enum literal names are spelled out.
// Every other component refers to names through the Elm/Att/Enu handles,
// so attribute lookup and child-type dispatch reduce to integer
// comparisons. Order matters: a handle is the 0-based position of its
// name in the table.

// Elm identifies one of the recognized element kinds.
type Elm int

// Att identifies one of the recognized attribute names.
type Att int

// Enu identifies one of the recognized enum literal values.
type Enu int

// Invalid handles are returned by the lookup functions when a name is
// not part of the vocabulary.
const (
	ElmInvalid Elm = -1
	AttInvalid Att = -1
	EnuInvalid Enu = -1
)

const (
	ElmFMIModelDescription Elm = iota
	ElmUnitDefinitions
	ElmBaseUnit
	ElmDisplayUnitDefinition
	ElmTypeDefinitions
	ElmType
	ElmRealType
	ElmIntegerType
	ElmBooleanType
	ElmStringType
	ElmEnumerationType
	ElmItem
	ElmDefaultExperiment
	ElmVendorAnnotations
	ElmTool
	ElmAnnotation
	ElmModelVariables
	ElmScalarVariable
	ElmDirectDependency
	ElmName
	ElmReal
	ElmInteger
	ElmBoolean
	ElmString
	ElmEnumeration
	ElmImplementation
	ElmCoSimulationStandAlone
	ElmCoSimulationTool
	ElmModel
	ElmFile
	ElmCapabilities
	elmMax
)

var elmNames = [elmMax]string{
	"fmiModelDescription", "UnitDefinitions", "BaseUnit", "DisplayUnitDefinition", "TypeDefinitions",
	"Type", "RealType", "IntegerType", "BooleanType", "StringType", "EnumerationType", "Item",
	"DefaultExperiment", "VendorAnnotations", "Tool", "Annotation", "ModelVariables", "ScalarVariable",
	"DirectDependency", "Name", "Real", "Integer", "Boolean", "String", "Enumeration",
	"Implementation", "CoSimulation_StandAlone", "CoSimulation_Tool", "Model", "File", "Capabilities",
}

const (
	AttFMIVersion Att = iota
	AttDisplayUnit
	AttGain
	AttOffset
	AttUnit
	AttName
	AttDescription
	AttQuantity
	AttRelativeQuantity
	AttMin
	AttMax
	AttNominal
	AttDeclaredType
	AttStart
	AttFixed
	AttStartTime
	AttStopTime
	AttTolerance
	AttValue
	AttValueReference
	AttVariability
	AttCausality
	AttAlias
	AttModelName
	AttModelIdentifier
	AttGUID
	AttAuthor
	AttVersion
	AttGenerationTool
	AttGenerationDateAndTime
	AttVariableNamingConvention
	AttNumberOfContinuousStates
	AttNumberOfEventIndicators
	AttInput
	AttCanHandleVariableCommunicationStepSize
	AttCanHandleEvents
	AttCanRejectSteps
	AttCanInterpolateInputs
	AttMaxOutputDerivativeOrder
	AttCanRunAsynchronuously
	AttCanSignalEvents
	AttCanBeInstantiatedOnlyOncePerProcess
	AttCanNotUseMemoryManagementFunctions
	AttFile
	AttEntryPoint
	AttManualStart
	AttType
	attMax
)

var attNames = [attMax]string{
	"fmiVersion", "displayUnit", "gain", "offset", "unit", "name", "description", "quantity", "relativeQuantity",
	"min", "max", "nominal", "declaredType", "start", "fixed", "startTime", "stopTime", "tolerance", "value",
	"valueReference", "variability", "causality", "alias", "modelName", "modelIdentifier", "guid", "author",
	"version", "generationTool", "generationDateAndTime", "variableNamingConvention", "numberOfContinuousStates",
	"numberOfEventIndicators", "input",
	"canHandleVariableCommunicationStepSize", "canHandleEvents", "canRejectSteps", "canInterpolateInputs",
	"maxOutputDerivativeOrder", "canRunAsynchronuously", "canSignalEvents", "canBeInstantiatedOnlyOncePerProcess",
	"canNotUseMemoryManagementFunctions", "file", "entryPoint", "manualStart", "type",
}

const (
	EnuFlat Enu = iota
	EnuStructured
	EnuConstant
	EnuParameter
	EnuDiscrete
	EnuContinuous
	EnuInput
	EnuOutput
	EnuInternal
	EnuNone
	EnuNoAlias
	EnuAlias
	EnuNegatedAlias
	enuMax
)

var enuNames = [enuMax]string{
	"flat", "structured", "constant", "parameter", "discrete", "continuous",
	"input", "output", "internal", "none", "noAlias", "alias", "negatedAlias",
}

var (
	elmLookup = make(map[string]Elm, elmMax)
	attLookup = make(map[string]Att, attMax)
	enuLookup = make(map[string]Enu, enuMax)
)

func init() {
	for i, name := range elmNames {
		elmLookup[name] = Elm(i)
	}
	for i, name := range attNames {
		attLookup[name] = Att(i)
	}
	for i, name := range enuNames {
		enuLookup[name] = Enu(i)
	}
}

func (e Elm) String() string {
	if e < 0 || e >= elmMax {
		return "Elm(invalid)"
	}
	return elmNames[e]
}

func (a Att) String() string {
	if a < 0 || a >= attMax {
		return "Att(invalid)"
	}
	return attNames[a]
}

func (e Enu) String() string {
	if e < 0 || e >= enuMax {
		return "Enu(invalid)"
	}
	return enuNames[e]
}

// LookupElement resolves an element name against the vocabulary.
// It returns ElmInvalid if the name is not recognized.
func LookupElement(name string) Elm {
	if e, ok := elmLookup[name]; ok {
		return e
	}
	return ElmInvalid
}

// LookupAttribute resolves an attribute name against the vocabulary.
// It returns AttInvalid if the name is not recognized.
func LookupAttribute(name string) Att {
	if a, ok := attLookup[name]; ok {
		return a
	}
	return AttInvalid
}

// LookupEnum resolves an enum literal against the vocabulary.
// It returns EnuInvalid if the literal is not recognized.
func LookupEnum(value string) Enu {
	if e, ok := enuLookup[value]; ok {
		return e
	}
	return EnuInvalid
}
