package modeldesc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bouncingBall = `<?xml version="1.0" encoding="UTF-8"?>
<fmiModelDescription fmiVersion="1.0" modelName="bouncing ball" modelIdentifier="bball"
    guid="{8c4e810f-3df3-4a00-8276-176fa3c9f003}" description="simple bouncing ball"
    numberOfContinuousStates="2" numberOfEventIndicators="1">
  <UnitDefinitions>
    <BaseUnit unit="m/s">
      <DisplayUnitDefinition displayUnit="km/h" gain="3.6"/>
    </BaseUnit>
  </UnitDefinitions>
  <TypeDefinitions>
    <Type name="Speed" description="velocity of the ball">
      <RealType unit="m/s" nominal="10"/>
    </Type>
    <Type name="Options">
      <EnumerationType min="1" max="2">
        <Item name="up"/>
        <Item name="down"/>
      </EnumerationType>
    </Type>
  </TypeDefinitions>
  <DefaultExperiment startTime="0" stopTime="3" tolerance="0.0001"/>
  <VendorAnnotations>
    <Tool name="SimTool">
      <Annotation name="license" value="none"/>
    </Tool>
  </VendorAnnotations>
  <ModelVariables>
    <ScalarVariable name="v" valueReference="0" causality="output">
      <Real declaredType="Speed"/>
      <DirectDependency>
        <Name>u</Name>
      </DirectDependency>
    </ScalarVariable>
    <ScalarVariable name="u" valueReference="1" causality="input" variability="continuous">
      <Real start="0"/>
    </ScalarVariable>
    <ScalarVariable name="der(v)" valueReference="0" alias="alias">
      <Real/>
    </ScalarVariable>
    <ScalarVariable name="mode" valueReference="2">
      <Enumeration declaredType="Options" start="1"/>
    </ScalarVariable>
  </ModelVariables>
  <Implementation>
    <CoSimulation_StandAlone>
      <Capabilities canHandleVariableCommunicationStepSize="true" canRejectSteps="false"/>
    </CoSimulation_StandAlone>
  </Implementation>
</fmiModelDescription>`

func TestParseBouncingBall(t *testing.T) {
	md, err := Parse([]byte(bouncingBall))
	require.NoError(t, err, "document should parse")
	require.NotNil(t, md)

	require.Equal(t, ElmFMIModelDescription, md.Kind())
	assert.Equal(t, "bball", md.ModelIdentifier())
	assert.Equal(t, 2, md.NumberOfStates())
	assert.Equal(t, 1, md.NumberOfEventIndicators())

	ud := md.UnitDefinitions()
	require.Len(t, ud, 1)
	unit, ok := ud[0].Attribute(AttUnit)
	require.True(t, ok)
	assert.Equal(t, "m/s", unit)
	require.Len(t, ud[0].Children(), 1)
	assert.Equal(t, ElmDisplayUnitDefinition, ud[0].Children()[0].Kind())

	td := md.TypeDefinitions()
	require.Len(t, td, 2)
	assert.Equal(t, "Speed", td[0].Name())
	assert.Equal(t, ElmRealType, td[0].TypeSpec().Kind())
	enum := td[1].TypeSpec()
	require.Equal(t, ElmEnumerationType, enum.Kind())
	items := enum.(*ListElement).Children()
	require.Len(t, items, 2)
	assert.Equal(t, "up", items[0].(*Element).Name())
	assert.Equal(t, "down", items[1].(*Element).Name())

	de := md.DefaultExperiment()
	require.NotNil(t, de)
	stop, vs := GetDouble(de, AttStopTime)
	require.Equal(t, ValueDefined, vs)
	assert.Equal(t, 3.0, stop)

	va := md.VendorAnnotations()
	require.Len(t, va, 1)
	assert.Equal(t, "SimTool", va[0].Name())
	require.Len(t, va[0].Children(), 1)

	mv := md.ModelVariables()
	require.Len(t, mv, 4)
	assert.Equal(t, []string{"v", "u", "der(v)", "mode"},
		[]string{mv[0].Name(), mv[1].Name(), mv[2].Name(), mv[3].Name()},
		"variables keep document order")
	assert.Equal(t, []string{"u"}, mv[0].DirectDependencies())
	assert.Nil(t, mv[1].DirectDependencies(), "no DirectDependency element declared")

	cs := md.CoSimulation()
	require.NotNil(t, cs)
	assert.Equal(t, ElmCoSimulationStandAlone, cs.Kind())
	require.NotNil(t, cs.Capabilities())
	canVar, vs := GetBoolean(cs.Capabilities(), AttCanHandleVariableCommunicationStepSize)
	require.Equal(t, ValueDefined, vs)
	assert.True(t, canVar)
	assert.Nil(t, cs.Model(), "stand-alone variant has no model descriptor")
}

func TestParseDeclaredTypeInheritance(t *testing.T) {
	md, err := Parse([]byte(bouncingBall))
	require.NoError(t, err)

	v := md.VariableByName("v")
	require.NotNil(t, v)

	// unit is absent on the variable itself and inherited from Speed
	_, ok := v.TypeSpec().Attribute(AttUnit)
	require.False(t, ok)
	unit, ok := md.ResolveString(v.TypeSpec(), AttUnit)
	require.True(t, ok)
	assert.Equal(t, "m/s", unit)

	// the declared type does not define start either: still missing
	_, ok = md.ResolveString(v.TypeSpec(), AttStart)
	assert.False(t, ok)

	desc, ok := md.Description(v)
	require.True(t, ok)
	assert.Equal(t, "velocity of the ball", desc, "description falls back to the declared type")

	assert.Equal(t, 10.0, md.Nominal(0), "nominal inherited from the declared type")
	assert.Equal(t, 1.0, md.Nominal(1), "nominal defaults to 1.0 when undefined")
}

func TestParseQueries(t *testing.T) {
	md, err := Parse([]byte(bouncingBall))
	require.NoError(t, err)

	assert.Nil(t, md.VariableByName("nope"))

	v := md.Variable(0, ElmReal)
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Name())

	nonAlias := md.NonAliasVariable(0, ElmReal)
	require.NotNil(t, nonAlias)
	assert.Equal(t, "v", nonAlias.Name())

	alias := md.VariableByName("der(v)")
	require.NotNil(t, alias)
	assert.Equal(t, EnuAlias, alias.Alias())

	// Enumeration and Integer share a base type
	mode := md.Variable(2, ElmInteger)
	require.NotNil(t, mode)
	assert.Equal(t, "mode", mode.Name())
	assert.Nil(t, md.Variable(2, ElmReal))

	assert.Nil(t, md.Variable(UndefinedValueReference, ElmReal))

	require.NotNil(t, md.DeclaredType("Speed"))
	assert.Nil(t, md.DeclaredType("Torque"))
	assert.Nil(t, md.DeclaredType(""))
}

func TestParseEnumDefaults(t *testing.T) {
	md, err := Parse([]byte(bouncingBall))
	require.NoError(t, err)

	u := md.VariableByName("u")
	require.NotNil(t, u)
	assert.Equal(t, EnuInput, u.Causality())
	assert.Equal(t, EnuContinuous, u.Variability())

	mode := md.VariableByName("mode")
	require.NotNil(t, mode)

	causality, vs := GetEnum(mode, AttCausality)
	assert.Equal(t, EnuInternal, causality)
	assert.Equal(t, ValueMissing, vs, "default applied, reported as missing")

	variability, vs := GetEnum(mode, AttVariability)
	assert.Equal(t, EnuContinuous, variability)
	assert.Equal(t, ValueMissing, vs)

	alias, vs := GetEnum(mode, AttAlias)
	assert.Equal(t, EnuNoAlias, alias)
	assert.Equal(t, ValueMissing, vs)

	convention, vs := GetEnum(md, AttVariableNamingConvention)
	assert.Equal(t, EnuFlat, convention)
	assert.Equal(t, ValueMissing, vs)
}

func TestParseAttributeInterning(t *testing.T) {
	md, err := Parse([]byte(bouncingBall))
	require.NoError(t, err)

	var handles []Att
	for _, sv := range md.ModelVariables() {
		for _, a := range sv.Attributes() {
			if a.Name.String() == "name" {
				handles = append(handles, a.Name)
			}
		}
	}
	require.Len(t, handles, 4)
	for _, h := range handles {
		assert.Equal(t, AttName, h, "every name attribute stores the one canonical handle")
	}
}

func TestParseMinimalRoot(t *testing.T) {
	md, err := Parse([]byte(`<fmiModelDescription fmiVersion="1.0" modelName="m" modelIdentifier="m"
		guid="g" numberOfContinuousStates="0" numberOfEventIndicators="0"/>`))
	require.NoError(t, err)

	assert.Nil(t, md.UnitDefinitions())
	assert.Nil(t, md.TypeDefinitions())
	assert.Nil(t, md.DefaultExperiment())
	assert.Nil(t, md.VendorAnnotations())
	assert.Nil(t, md.ModelVariables())
	assert.Nil(t, md.CoSimulation())
}

func TestParseEmptyListBlock(t *testing.T) {
	md, err := Parse([]byte(`<fmiModelDescription fmiVersion="1.0" modelName="m" modelIdentifier="m"
		guid="g" numberOfContinuousStates="0" numberOfEventIndicators="0">
		<TypeDefinitions></TypeDefinitions>
		<ModelVariables/>
	</fmiModelDescription>`))
	require.NoError(t, err)

	require.NotNil(t, md.TypeDefinitions(), "present but empty block is distinguishable from absent")
	assert.Len(t, md.TypeDefinitions(), 0)
	require.NotNil(t, md.ModelVariables())
	assert.Len(t, md.ModelVariables(), 0)
}

func TestParseMisplacedImplementation(t *testing.T) {
	// SimulationX 3.x places the Implementation block before
	// ModelVariables; block order must not matter.
	md, err := Parse([]byte(`<fmiModelDescription fmiVersion="1.0" modelName="m" modelIdentifier="m"
		guid="g" numberOfContinuousStates="0" numberOfEventIndicators="0">
		<Implementation>
			<CoSimulation_Tool>
				<Capabilities/>
				<Model>
					<File file="data.bin"/>
				</Model>
			</CoSimulation_Tool>
		</Implementation>
		<ModelVariables>
			<ScalarVariable name="x" valueReference="0"><Real/></ScalarVariable>
		</ModelVariables>
	</fmiModelDescription>`))
	require.NoError(t, err)

	cs := md.CoSimulation()
	require.NotNil(t, cs)
	assert.Equal(t, ElmCoSimulationTool, cs.Kind())
	require.NotNil(t, cs.Model())
	require.Len(t, cs.Model().Children(), 1)
	file, ok := cs.Model().Children()[0].Attribute(AttFile)
	require.True(t, ok)
	assert.Equal(t, "data.bin", file)
	require.Len(t, md.ModelVariables(), 1)
}

func TestParseDuplicateBlock(t *testing.T) {
	_, err := Parse([]byte(`<fmiModelDescription fmiVersion="1.0" modelName="m" modelIdentifier="m"
		guid="g" numberOfContinuousStates="0" numberOfEventIndicators="0">
		<DefaultExperiment startTime="0"/>
		<DefaultExperiment startTime="1"/>
	</fmiModelDescription>`))
	require.Error(t, err)
	var dup ErrDuplicateBlock
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, ElmDefaultExperiment, dup.Block)
}

func TestParseRejectsUnknownNames(t *testing.T) {
	inputs := map[string]string{
		"element":   `<fmiModelDescription><Bogus/></fmiModelDescription>`,
		"attribute": `<fmiModelDescription bogus="1"/>`,
		"enum":      `<fmiModelDescription variableNamingConvention="fancy"/>`,
	}
	for name, doc := range inputs {
		t.Logf("checking unknown %s", name)
		md, err := Parse([]byte(doc))
		require.Error(t, err, "unknown %s is fatal", name)
		require.Nil(t, md, "no result on failure")
		var unknown ErrUnknownName
		require.ErrorAs(t, err, &unknown)
	}
}

func TestParseWrongRoot(t *testing.T) {
	md, err := Parse([]byte(`<Tool name="t"/>`))
	require.Error(t, err)
	require.Nil(t, md)
}

func TestParseWrongRootChild(t *testing.T) {
	md, err := Parse([]byte(`<fmiModelDescription fmiVersion="1.0"><Capabilities/></fmiModelDescription>`))
	require.Error(t, err)
	require.Nil(t, md)
	var mismatch ErrElementTypeMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, ElmCapabilities, mismatch.Found)
}

func TestParseMalformed(t *testing.T) {
	md, err := Parse([]byte(`<fmiModelDescription fmiVersion="1.0"><ModelVariables>`))
	require.Error(t, err, "unbalanced document is fatal")
	require.Nil(t, md)
}

func TestParseErrorCarriesLine(t *testing.T) {
	_, err := Parse([]byte("<fmiModelDescription>\n<Bogus/>\n</fmiModelDescription>"))
	require.Error(t, err)
	var perr ErrParse
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
}

func TestParseNonUTF8Document(t *testing.T) {
	doc := `<?xml version="1.0" encoding="ISO-8859-1"?>
<fmiModelDescription fmiVersion="1.0" modelName="m" modelIdentifier="m"
	guid="g" description="90\xb0 bend" numberOfContinuousStates="0" numberOfEventIndicators="0"/>`
	raw := []byte(strings.ReplaceAll(doc, `\xb0`, "\xb0"))

	md, err := Parse(raw)
	require.NoError(t, err, "declared charset is honored")
	desc, ok := GetString(md, AttDescription)
	require.True(t, ok)
	assert.Equal(t, "90° bend", desc)
}

func TestParseStrictCharset(t *testing.T) {
	latin1 := `<?xml version="1.0" encoding="ISO-8859-1"?>
<fmiModelDescription fmiVersion="1.0" modelName="m" modelIdentifier="m"
	guid="g" numberOfContinuousStates="0" numberOfEventIndicators="0"/>`

	p := New(WithStrictCharset(true))
	md, err := p.ParseString(latin1)
	require.Error(t, err, "strict mode rejects any non-UTF-8 charset declaration")
	require.Nil(t, md)
	assert.Contains(t, err.Error(), "ISO-8859-1")

	md, err = p.ParseString(`<?xml version="1.0" encoding="UTF-8"?>
<fmiModelDescription fmiVersion="1.0" modelName="m" modelIdentifier="m"
	guid="g" numberOfContinuousStates="0" numberOfEventIndicators="0"/>`)
	require.NoError(t, err, "UTF-8 documents are unaffected by strict mode")
	require.NotNil(t, md)

	md, err = New().ParseString(latin1)
	require.NoError(t, err, "the default is to transcode")
	require.NotNil(t, md)
}

func TestRequiredAttributeContract(t *testing.T) {
	md, err := Parse([]byte(`<fmiModelDescription fmiVersion="1.0" modelName="m" guid="g">
		<ModelVariables>
			<ScalarVariable name="x"><Real/></ScalarVariable>
		</ModelVariables>
	</fmiModelDescription>`))
	require.NoError(t, err, "required attributes are not enforced at parse time")

	require.Panics(t, func() { md.ModelIdentifier() })
	require.Panics(t, func() { md.NumberOfStates() })
	require.Panics(t, func() { md.ModelVariables()[0].ValueReference() })
}
