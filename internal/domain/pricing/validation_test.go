package pricing

import (
	"testing"

	"pannel_pintura/internal/domain/entities"
)

func validContactRequest() entities.ContactRequest {
	return entities.ContactRequest{
		Name:        "Juan Pérez",
		Email:       "juan@example.com",
		Phone:       "70123456",
		ProjectType: "interior",
		Property:    "casa",
		Area:        "120",
		Timeline:    "pronto",
	}
}

func TestValidateSubmission_AllEmpty(t *testing.T) {
	errs := ValidateSubmission(entities.ContactRequest{})
	if len(errs) != 7 {
		t.Fatalf("expected 7 errors, got %d: %v", len(errs), errs)
	}

	want := map[string]string{
		FieldName:        "El nombre es requerido",
		FieldEmail:       "El email es requerido",
		FieldPhone:       "El teléfono es requerido",
		FieldProjectType: "Selecciona el tipo de proyecto",
		FieldProperty:    "Selecciona el tipo de propiedad",
		FieldArea:        "El área aproximada es requerida",
		FieldTimeline:    "Selecciona el plazo deseado",
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Fatalf("field %s: expected %q, got %q", field, msg, errs[field])
		}
	}
}

func TestValidateSubmission_Valid(t *testing.T) {
	errs := ValidateSubmission(validContactRequest())
	if !errs.Valid() {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateSubmission_FieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *entities.ContactRequest)
		field  string
		msg    string
	}{
		{"blank name", func(r *entities.ContactRequest) { r.Name = "   " }, FieldName, "El nombre es requerido"},
		{"malformed email", func(r *entities.ContactRequest) { r.Email = "juan.example.com" }, FieldEmail, "El email no es válido"},
		{"email without domain", func(r *entities.ContactRequest) { r.Email = "juan@" }, FieldEmail, "El email no es válido"},
		{"blank phone", func(r *entities.ContactRequest) { r.Phone = "\t" }, FieldPhone, "El teléfono es requerido"},
		{"unknown project type", func(r *entities.ContactRequest) { r.ProjectType = "techo" }, FieldProjectType, "Selecciona el tipo de proyecto"},
		{"unknown property", func(r *entities.ContactRequest) { r.Property = "castillo" }, FieldProperty, "Selecciona el tipo de propiedad"},
		{"blank area", func(r *entities.ContactRequest) { r.Area = " " }, FieldArea, "El área aproximada es requerida"},
		{"unknown timeline", func(r *entities.ContactRequest) { r.Timeline = "ayer" }, FieldTimeline, "Selecciona el plazo deseado"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validContactRequest()
			tc.mutate(&req)
			errs := ValidateSubmission(req)
			if len(errs) != 1 || errs[tc.field] != tc.msg {
				t.Fatalf("expected only %s=%q, got %v", tc.field, tc.msg, errs)
			}
		})
	}
}

func TestValidateSubmission_DoesNotMutate(t *testing.T) {
	req := validContactRequest()
	req.Name = "  Juan  "
	req.Email = " juan@example.com "
	before := req

	if errs := ValidateSubmission(req); !errs.Valid() {
		t.Fatalf("expected trimmed values to pass, got %v", errs)
	}
	if req != before {
		t.Fatalf("input was modified: %+v", req)
	}
}

func TestValidateSubmission_AcceptsEveryOption(t *testing.T) {
	for _, p := range entities.ContactProjectTypes {
		for _, prop := range entities.PropertyTypes {
			for _, tl := range entities.Timelines {
				req := validContactRequest()
				req.ProjectType, req.Property, req.Timeline = p, prop, tl
				if errs := ValidateSubmission(req); !errs.Valid() {
					t.Fatalf("%s/%s/%s rejected: %v", p, prop, tl, errs)
				}
			}
		}
	}
}

func TestValidateSubmission_OptionsFollowEntityLists(t *testing.T) {
	fields := map[string][]string{
		FieldProjectType: entities.ContactProjectTypes,
		FieldProperty:    entities.PropertyTypes,
		FieldTimeline:    entities.Timelines,
	}
	for field, options := range fields {
		if got := optionTags[field]; len(got) != len(options) || &got[0] != &options[0] {
			t.Fatalf("%s rule is not bound to the entity option list", field)
		}

		req := validContactRequest()
		switch field {
		case FieldProjectType:
			req.ProjectType = "jardin"
		case FieldProperty:
			req.Property = "jardin"
		case FieldTimeline:
			req.Timeline = "jardin"
		}
		errs := ValidateSubmission(req)
		if len(errs) != 1 || errs[field] == "" {
			t.Fatalf("expected only %s to fail for an unlisted option, got %v", field, errs)
		}
	}
}
