package rolemeta

import (
	"testing"

	"medical-directory-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmptyPayloadListsEveryMandatoryField(t *testing.T) {
	for _, s := range Schemas() {
		t.Run(string(s.Role), func(t *testing.T) {
			labels := make([]string, 0, len(s.Required))
			for _, f := range s.Required {
				labels = append(labels, f.Label)
			}
			assert.Equal(t, labels, Validate(s.Role, Normalize(s.Role, map[string]any{})))
		})
	}
}

func TestValidateDoctor(t *testing.T) {
	missing := Validate(entity.RoleDoctor, Normalize(entity.RoleDoctor, map[string]any{
		"specialization": "   ",
		"license_number": "LN-42",
	}))
	assert.Equal(t, []string{"Spécialité"}, missing)

	missing = Validate(entity.RoleDoctor, Normalize(entity.RoleDoctor, map[string]any{
		"specialization": "Cardiologie",
		"licenseNumber":  "LN-42",
	}))
	assert.Empty(t, missing)
}

func TestValidatePharmacy(t *testing.T) {
	missing := Validate(entity.RolePharmacy, Normalize(entity.RolePharmacy, map[string]any{
		"legalName":          "Pharmacie du Centre",
		"registrationNumber": "R-1",
		"address":            "1 rue Didouche",
	}))
	assert.Equal(t, []string{"Pharmacien titulaire"}, missing)
}

func TestValidateUnknownRole(t *testing.T) {
	assert.Nil(t, Validate(entity.Role("dentist"), nil))
}
