package modeldesc

import (
	"log/slog"

	"github.com/fmukit/modeldesc/internal/debug"
	"github.com/fmukit/modeldesc/sax"
)

// parserCtx holds all state of one parse in progress: the reduction
// stack and the character-data accumulator. A fresh context is created
// per parse, so parses never share mutable state.
type parserCtx struct {
	stack    nodeStack
	data     []byte
	dataSeen bool
	skipData bool
	logger   *slog.Logger
}

func newParserCtx(logger *slog.Logger) *parserCtx {
	return &parserCtx{
		skipData: true,
		logger:   logger,
	}
}

// StartElement resolves the element name, allocates a node of the
// matching shape with its canonicalized attributes, and pushes it.
// Only the Name element carries its value as text content, so character
// data recording is enabled for it and suppressed for everything else.
func (ctx *parserCtx) StartElement(name string, attrs []sax.Attribute) error {
	el := LookupElement(name)
	if el == ElmInvalid {
		return ErrUnknownName{Kind: "element", Name: name}
	}

	ctx.skipData = el != ElmName
	if el == ElmName {
		ctx.data = nil
		ctx.dataSeen = false
	}

	raw := make([]rawAttr, 0, len(attrs))
	for _, a := range attrs {
		raw = append(raw, rawAttr{name: a.Name, value: a.Value})
	}
	n, err := newNode(el, raw)
	if err != nil {
		return err
	}
	ctx.stack.Push(n)
	return nil
}

// Characters accumulates text content for the element currently
// recording. The underlying tokenizer may deliver the content of one
// element in several fragments; they are concatenated in arrival order.
// A first fragment consisting of a single newline stands for empty
// content (tokenizer quirk for empty elements) and is dropped.
func (ctx *parserCtx) Characters(data []byte) error {
	if ctx.skipData {
		return nil
	}
	if !ctx.dataSeen && len(data) == 1 && data[0] == '\n' {
		ctx.dataSeen = true
		return nil
	}
	ctx.dataSeen = true
	ctx.data = append(ctx.data, data...)
	return nil
}

// EndElement runs the reduction rule for the closed element: the rule
// pops the element's children off the stack, validates their kinds, and
// folds them into the element's node, which ends up back on top.
func (ctx *parserCtx) EndElement(name string) error {
	el := LookupElement(name)
	if el == ElmInvalid {
		return ErrUnknownName{Kind: "element", Name: name}
	}
	if debug.Enabled {
		debug.Printf("reduce %s", el)
	}

	var err error
	switch el {
	case ElmFMIModelDescription:
		err = ctx.reduceModelDescription()
	case ElmImplementation:
		// The Implementation element exists only in the document, not
		// in the tree: replace it with its co-simulation payload.
		el, err = ctx.reduceImplementation()
	case ElmCoSimulationStandAlone:
		err = ctx.reduceCoSimulationStandAlone()
	case ElmCoSimulationTool:
		err = ctx.reduceCoSimulationTool()
	case ElmType:
		err = ctx.reduceType()
	case ElmScalarVariable:
		err = ctx.reduceScalarVariable()
	case ElmModelVariables:
		err = ctx.popList(ElmScalarVariable)
	case ElmVendorAnnotations:
		err = ctx.popList(ElmTool)
	case ElmTool:
		err = ctx.popList(ElmAnnotation)
	case ElmTypeDefinitions:
		err = ctx.popList(ElmType)
	case ElmEnumerationType:
		err = ctx.popList(ElmItem)
	case ElmUnitDefinitions:
		err = ctx.popList(ElmBaseUnit)
	case ElmBaseUnit:
		err = ctx.popList(ElmDisplayUnitDefinition)
	case ElmDirectDependency:
		err = ctx.popList(ElmName)
	case ElmModel:
		err = ctx.popList(ElmFile)
	case ElmName:
		err = ctx.reduceName()
	default:
		// leaf element, fully shaped at construction
	}
	if err != nil {
		return err
	}

	// Every child of el has been consumed; the node on top must now be
	// the element just closed. Anything else is a reduction bug, not a
	// user input error.
	top, ok := ctx.stack.Peek()
	if !ok {
		return ErrIllegalStructure{Expected: el.String()}
	}
	if top.Kind() != el {
		return ErrElementTypeMismatch{Expected: el.String(), Found: top.Kind()}
	}
	return nil
}

// pop returns the top node, or an error naming the expected element when
// the stack is exhausted.
func (ctx *parserCtx) pop(expected string) (Node, error) {
	n, ok := ctx.stack.Pop()
	if !ok {
		return nil, ErrIllegalStructure{Expected: expected}
	}
	return n, nil
}

// peekKind returns the top node after verifying its kind, leaving it on
// the stack.
func (ctx *parserCtx) peekKind(e Elm) (Node, error) {
	top, ok := ctx.stack.Peek()
	if !ok {
		return nil, ErrIllegalStructure{Expected: e.String()}
	}
	if top.Kind() != e {
		return nil, ErrElementTypeMismatch{Expected: e.String(), Found: top.Kind()}
	}
	return top, nil
}

// popKind pops the top node after verifying its kind.
func (ctx *parserCtx) popKind(e Elm) (Node, error) {
	if _, err := ctx.peekKind(e); err != nil {
		return nil, err
	}
	return ctx.pop(e.String())
}

// reduceModelDescription folds the optional root blocks into the root
// node. The schema's ordering constraints are looser than its sequence
// suggests (at least one known exporter emits Implementation out of
// place), so the blocks are treated as optional slots matched by kind in
// whatever order they were pushed. A slot filled twice is an error.
func (ctx *parserCtx) reduceModelDescription() error {
	var (
		ud []*ListElement
		td []*Type
		de *Element
		va []*ListElement
		mv []*ScalarVariable
		cs *CoSimulation
	)

	for {
		child, err := ctx.pop(ElmFMIModelDescription.String())
		if err != nil {
			return err
		}

		switch child.Kind() {
		case ElmCoSimulationStandAlone, ElmCoSimulationTool:
			if cs != nil {
				return ErrDuplicateBlock{Block: child.Kind()}
			}
			cs = child.(*CoSimulation)
		case ElmModelVariables:
			if mv != nil {
				return ErrDuplicateBlock{Block: ElmModelVariables}
			}
			children := child.(*ListElement).children
			mv = make([]*ScalarVariable, 0, len(children))
			for _, c := range children {
				mv = append(mv, c.(*ScalarVariable))
			}
		case ElmVendorAnnotations:
			if va != nil {
				return ErrDuplicateBlock{Block: ElmVendorAnnotations}
			}
			va = listElements(child.(*ListElement))
		case ElmDefaultExperiment:
			if de != nil {
				return ErrDuplicateBlock{Block: ElmDefaultExperiment}
			}
			de = child.(*Element)
		case ElmTypeDefinitions:
			if td != nil {
				return ErrDuplicateBlock{Block: ElmTypeDefinitions}
			}
			children := child.(*ListElement).children
			td = make([]*Type, 0, len(children))
			for _, c := range children {
				td = append(td, c.(*Type))
			}
		case ElmUnitDefinitions:
			if ud != nil {
				return ErrDuplicateBlock{Block: ElmUnitDefinitions}
			}
			ud = listElements(child.(*ListElement))
		case ElmFMIModelDescription:
			md := child.(*ModelDescription)
			md.unitDefinitions = ud
			md.typeDefinitions = td
			md.defaultExperiment = de
			md.vendorAnnotations = va
			md.modelVariables = mv
			md.coSimulation = cs
			ctx.stack.Push(md)
			return nil
		default:
			return ErrElementTypeMismatch{
				Expected: "UnitDefinitions, TypeDefinitions, DefaultExperiment, VendorAnnotations, ModelVariables or Implementation",
				Found:    child.Kind(),
			}
		}
	}
}

func listElements(l *ListElement) []*ListElement {
	out := make([]*ListElement, 0, len(l.children))
	for _, c := range l.children {
		out = append(out, c.(*ListElement))
	}
	return out
}

// reduceImplementation unwraps the Implementation element: the
// co-simulation payload takes its place on the stack, and the wrapper is
// discarded. Returns the payload's kind so the caller can run the
// post-reduction check against it.
func (ctx *parserCtx) reduceImplementation() (Elm, error) {
	cs, err := ctx.pop("CoSimulation_StandAlone or CoSimulation_Tool")
	if err != nil {
		return ElmInvalid, err
	}
	if _, err := ctx.popKind(ElmImplementation); err != nil {
		return ElmInvalid, err
	}
	ctx.stack.Push(cs)
	return cs.Kind(), nil
}

func (ctx *parserCtx) reduceCoSimulationStandAlone() error {
	ca, err := ctx.popKind(ElmCapabilities)
	if err != nil {
		return err
	}
	top, err := ctx.peekKind(ElmCoSimulationStandAlone)
	if err != nil {
		return err
	}
	top.(*CoSimulation).capabilities = ca.(*Element)
	return nil
}

func (ctx *parserCtx) reduceCoSimulationTool() error {
	mo, err := ctx.popKind(ElmModel)
	if err != nil {
		return err
	}
	ca, err := ctx.popKind(ElmCapabilities)
	if err != nil {
		return err
	}
	top, err := ctx.peekKind(ElmCoSimulationTool)
	if err != nil {
		return err
	}
	cs := top.(*CoSimulation)
	cs.capabilities = ca.(*Element)
	cs.model = mo.(*ListElement)
	return nil
}

func (ctx *parserCtx) reduceType() error {
	ts, err := ctx.pop("RealType or similar")
	if err != nil {
		return err
	}
	switch ts.Kind() {
	case ElmRealType, ElmIntegerType, ElmBooleanType, ElmStringType, ElmEnumerationType:
	default:
		return ErrElementTypeMismatch{Expected: "RealType or similar", Found: ts.Kind()}
	}
	top, err := ctx.peekKind(ElmType)
	if err != nil {
		return err
	}
	top.(*Type).typeSpec = ts
	return nil
}

func (ctx *parserCtx) reduceScalarVariable() error {
	child, err := ctx.pop("Real or similar")
	if err != nil {
		return err
	}

	var deps []*Element
	if child.Kind() == ElmDirectDependency {
		children := child.(*ListElement).children
		deps = make([]*Element, 0, len(children))
		for _, c := range children {
			deps = append(deps, c.(*Element))
		}
		child, err = ctx.pop("Real or similar")
		if err != nil {
			return err
		}
	}

	switch child.Kind() {
	case ElmReal, ElmInteger, ElmBoolean, ElmString, ElmEnumeration:
	default:
		return ErrElementTypeMismatch{Expected: "Real or similar", Found: child.Kind()}
	}
	top, err := ctx.peekKind(ElmScalarVariable)
	if err != nil {
		return err
	}
	sv := top.(*ScalarVariable)
	sv.dependencies = deps
	sv.typeSpec = child.(*Element)
	return nil
}

// popList pops the run of children of the given kind off the stack and
// attaches it, in document order, to the list element underneath. A zero
// length run is legal and yields an empty, non-nil child slice.
func (ctx *parserCtx) popList(childKind Elm) error {
	n := 0
	for {
		top, ok := ctx.stack.Peek()
		if !ok {
			return ErrIllegalStructure{Expected: childKind.String()}
		}
		if top.Kind() != childKind {
			break
		}
		ctx.stack.Pop()
		n++
	}

	top, _ := ctx.stack.Peek()
	le, ok := top.(*ListElement)
	if !ok {
		return ErrElementTypeMismatch{Expected: "list element", Found: top.Kind()}
	}
	le.children = ctx.stack.PopLastAsArray(n)
	return nil
}

// reduceName materializes the accumulated text content as a synthetic
// attribute on the Name node. The attribute key reuses the vocabulary's
// "input" name, matching how the dependency list is consumed.
func (ctx *parserCtx) reduceName() error {
	top, err := ctx.peekKind(ElmName)
	if err != nil {
		return err
	}
	name := top.(*Element)
	name.attrs = append(name.attrs, Attr{Name: AttInput, Value: string(ctx.data)})
	ctx.data = nil
	ctx.dataSeen = false
	ctx.skipData = true
	return nil
}
