package entity

// Role identifies the directory variant of an entry and selects its satellite table
type Role string

const (
	RoleDoctor      Role = "doctor"
	RoleParamedic   Role = "paramedic"
	RoleClinic      Role = "clinic"
	RoleLaboratory  Role = "laboratory"
	RolePharmacy    Role = "pharmacy"
	RoleAssociation Role = "association"
)

// Roles lists every directory variant in a stable order
var Roles = []Role{
	RoleDoctor,
	RoleParamedic,
	RoleClinic,
	RoleLaboratory,
	RolePharmacy,
	RoleAssociation,
}

// IsValid reports whether r is one of the known directory variants
func (r Role) IsValid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// AccountLabel returns the platform-wide role label used for access control.
func (r Role) AccountLabel() string {
	switch r {
	case RoleDoctor, RoleParamedic:
		return RoleLabelProfessional
	case RoleClinic, RoleLaboratory, RolePharmacy, RoleAssociation:
		return RoleLabelOrganization
	}
	return ""
}

// Account role labels
const (
	RoleLabelAdmin        = "admin"
	RoleLabelProfessional = "professional"
	RoleLabelOrganization = "organization"
)
