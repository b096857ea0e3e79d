package modeldesc

import "log/slog"

// validate cross-checks every declaredType reference against the root's
// type definitions. References are late-bound (forward references are
// legal), which is why this runs only once the whole tree exists. Each
// unresolved reference is reported individually; the tree is withheld
// when any were found, but never mutated.
func (p *Parser) validate(md *ModelDescription) error {
	errors := 0
	for _, sv := range md.modelVariables {
		declared, ok := sv.typeSpec.Attribute(AttDeclaredType)
		if !ok {
			continue
		}
		if md.DeclaredType(declared) == nil {
			p.logger.Warn("declared type not found in model description",
				slog.String("declaredType", declared),
				slog.String("variable", sv.Name()),
			)
			errors++
		}
	}
	if errors > 0 {
		err := ErrValidation{Errors: errors}
		p.logger.Error(err.Error())
		return err
	}
	return nil
}
