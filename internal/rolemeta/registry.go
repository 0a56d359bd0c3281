package rolemeta

import (
	"sort"

	"medical-directory-admin/internal/domain/entity"
)

// Field is a mandatory metadata key and the label shown to staff when it is missing
type Field struct {
	Key   string
	Label string
}

// Schema describes one role variant
type Schema struct {
	Role     entity.Role
	Table    string
	Required []Field
	// New returns an empty record with the role's defaults applied.
	New func() entity.RoleMetadata

	keys map[string]struct{}
}

// Keys returns the canonical metadata keys of the role, sorted.
func (s Schema) Keys() []string {
	out := make([]string, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Declares reports whether key is a canonical field of the role.
func (s Schema) Declares(key string) bool {
	_, ok := s.keys[key]
	return ok
}

var (
	fieldLegalName          = Field{Key: "legal_name", Label: "Raison sociale"}
	fieldRegistrationNumber = Field{Key: "registration_number", Label: "Numéro d'enregistrement"}
	fieldAddress            = Field{Key: "address", Label: "Adresse"}
	fieldLicenseNumber      = Field{Key: "license_number", Label: "Numéro de licence"}
)

var registry = buildRegistry(
	Schema{
		Role:  entity.RoleDoctor,
		Table: "doctor_details",
		Required: []Field{
			{Key: "specialization", Label: "Spécialité"},
			fieldLicenseNumber,
		},
		New: func() entity.RoleMetadata {
			return &entity.DoctorDetails{AcceptsNewPatients: true}
		},
	},
	Schema{
		Role:  entity.RoleParamedic,
		Table: "paramedic_details",
		Required: []Field{
			{Key: "profession", Label: "Profession"},
			fieldLicenseNumber,
		},
		New: func() entity.RoleMetadata {
			return &entity.ParamedicDetails{}
		},
	},
	Schema{
		Role:     entity.RoleClinic,
		Table:    "clinic_details",
		Required: []Field{fieldLegalName, fieldRegistrationNumber, fieldAddress},
		New: func() entity.RoleMetadata {
			return &entity.ClinicDetails{}
		},
	},
	Schema{
		Role:  entity.RoleLaboratory,
		Table: "laboratory_details",
		Required: []Field{
			fieldLegalName,
			fieldRegistrationNumber,
			fieldAddress,
			{Key: "accreditation_number", Label: "Numéro d'accréditation"},
		},
		New: func() entity.RoleMetadata {
			return &entity.LaboratoryDetails{}
		},
	},
	Schema{
		Role:  entity.RolePharmacy,
		Table: "pharmacy_details",
		Required: []Field{
			fieldLegalName,
			fieldRegistrationNumber,
			fieldAddress,
			{Key: "pharmacist_in_charge", Label: "Pharmacien titulaire"},
		},
		New: func() entity.RoleMetadata {
			return &entity.PharmacyDetails{}
		},
	},
	Schema{
		Role:     entity.RoleAssociation,
		Table:    "association_details",
		Required: []Field{fieldLegalName, fieldRegistrationNumber, fieldAddress},
		New: func() entity.RoleMetadata {
			return &entity.AssociationDetails{AcceptsVolunteers: true}
		},
	},
)

func buildRegistry(schemas ...Schema) map[entity.Role]Schema {
	out := make(map[entity.Role]Schema, len(schemas))
	for _, s := range schemas {
		s.keys = make(map[string]struct{})
		for k := range ToMap(s.New()) {
			s.keys[k] = struct{}{}
		}
		out[s.Role] = s
	}
	return out
}

// Lookup returns the schema of role.
func Lookup(role entity.Role) (Schema, bool) {
	s, ok := registry[role]
	return s, ok
}

// Schemas returns every registered schema in entity.Roles order.
func Schemas() []Schema {
	out := make([]Schema, 0, len(registry))
	for _, role := range entity.Roles {
		if s, ok := registry[role]; ok {
			out = append(out, s)
		}
	}
	return out
}
