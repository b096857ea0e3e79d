package modeldesc

import (
	"fmt"
	"io"
)

// Dumper writes an indented, one-line-per-node rendering of a tree,
// mainly for the lint command and debugging.
type Dumper struct{}

// Dump writes the tree rooted at n to out.
func (d *Dumper) Dump(out io.Writer, n Node) error {
	return d.dump(out, n, 1)
}

func (d *Dumper) dump(out io.Writer, n Node, indent int) error {
	if n == nil {
		return nil
	}
	for i := 0; i < indent; i++ {
		if _, err := io.WriteString(out, " "); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(out, n.Kind().String()); err != nil {
		return err
	}
	for _, a := range n.Attributes() {
		if _, err := fmt.Fprintf(out, " %s=%s", a.Name, a.Value); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return err
	}

	indent += 2
	switch t := n.(type) {
	case *ListElement:
		for _, c := range t.Children() {
			if err := d.dump(out, c, indent); err != nil {
				return err
			}
		}
	case *Type:
		if err := d.dump(out, t.TypeSpec(), indent); err != nil {
			return err
		}
	case *ScalarVariable:
		if err := d.dump(out, t.typeSpec, indent); err != nil {
			return err
		}
		for _, dep := range t.dependencies {
			if err := d.dump(out, dep, indent); err != nil {
				return err
			}
		}
	case *CoSimulation:
		if err := d.dump(out, t.capabilities, indent); err != nil {
			return err
		}
		if t.model != nil {
			if err := d.dump(out, t.model, indent); err != nil {
				return err
			}
		}
	case *ModelDescription:
		for _, ud := range t.unitDefinitions {
			if err := d.dump(out, ud, indent); err != nil {
				return err
			}
		}
		for _, td := range t.typeDefinitions {
			if err := d.dump(out, td, indent); err != nil {
				return err
			}
		}
		if t.defaultExperiment != nil {
			if err := d.dump(out, t.defaultExperiment, indent); err != nil {
				return err
			}
		}
		for _, va := range t.vendorAnnotations {
			if err := d.dump(out, va, indent); err != nil {
				return err
			}
		}
		for _, mv := range t.modelVariables {
			if err := d.dump(out, mv, indent); err != nil {
				return err
			}
		}
		if t.coSimulation != nil {
			if err := d.dump(out, t.coSimulation, indent); err != nil {
				return err
			}
		}
	}
	return nil
}
