package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoleMetadata is the satellite record of a directory entry. Exactly one implementation
// exists per Role and each one lives in its own table keyed by the entry ID.
type RoleMetadata interface {
	Role() Role
	TableName() string
	EntryKey() uuid.UUID
	SetEntryKey(id uuid.UUID)
}

// Satellite carries the key and timestamps shared by every satellite table
type Satellite struct {
	EntryID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (s *Satellite) EntryKey() uuid.UUID {
	return s.EntryID
}

func (s *Satellite) SetEntryKey(id uuid.UUID) {
	s.EntryID = id
}

// DoctorDetails holds physician attributes
type DoctorDetails struct {
	Satellite            `gorm:"embedded"`
	Specialization       Text       `gorm:"type:varchar(255)" json:"specialization"`
	SubSpecialties       StringList `gorm:"type:text[]" json:"sub_specialties"`
	LicenseNumber        Text       `gorm:"type:varchar(64)" json:"license_number"`
	YearsOfExperience    Number     `gorm:"type:numeric" json:"years_of_experience"`
	ConsultationFee      Number     `gorm:"type:numeric(12,2)" json:"consultation_fee"`
	AcceptsNewPatients   Flag       `gorm:"not null" json:"accepts_new_patients"`
	Teleconsultation     Flag       `gorm:"not null" json:"teleconsultation"`
	Languages            StringList `gorm:"type:text[]" json:"languages"`
	Certifications       StringList `gorm:"type:text[]" json:"certifications"`
	Education            StringList `gorm:"type:text[]" json:"education"`
	HospitalAffiliations StringList `gorm:"type:text[]" json:"hospital_affiliations"`
	Address              Text       `gorm:"type:text" json:"address"`
	Website              Text       `gorm:"type:text" json:"website"`
	WorkingHours         Object     `gorm:"type:jsonb" json:"working_hours"`
}

func (DoctorDetails) TableName() string { return "doctor_details" }
func (DoctorDetails) Role() Role        { return RoleDoctor }

// ParamedicDetails holds attributes of nurses, physiotherapists, midwives and similar
type ParamedicDetails struct {
	Satellite         `gorm:"embedded"`
	Profession        Text       `gorm:"type:varchar(255)" json:"profession"`
	LicenseNumber     Text       `gorm:"type:varchar(64)" json:"license_number"`
	YearsOfExperience Number     `gorm:"type:numeric" json:"years_of_experience"`
	ConsultationFee   Number     `gorm:"type:numeric(12,2)" json:"consultation_fee"`
	HomeVisits        Flag       `gorm:"not null" json:"home_visits"`
	Languages         StringList `gorm:"type:text[]" json:"languages"`
	Certifications    StringList `gorm:"type:text[]" json:"certifications"`
	Address           Text       `gorm:"type:text" json:"address"`
	Website           Text       `gorm:"type:text" json:"website"`
	WorkingHours      Object     `gorm:"type:jsonb" json:"working_hours"`
}

func (ParamedicDetails) TableName() string { return "paramedic_details" }
func (ParamedicDetails) Role() Role        { return RoleParamedic }

// Organization carries the legal identity shared by every organization variant
type Organization struct {
	LegalName          Text   `gorm:"type:varchar(255)" json:"legal_name"`
	RegistrationNumber Text   `gorm:"type:varchar(64)" json:"registration_number"`
	Address            Text   `gorm:"type:text" json:"address"`
	Website            Text   `gorm:"type:text" json:"website"`
	WorkingHours       Object `gorm:"type:jsonb" json:"working_hours"`
	Services           Object `gorm:"type:jsonb" json:"services"`
}

// ClinicDetails holds attributes of clinics and hospitals
type ClinicDetails struct {
	Satellite         `gorm:"embedded"`
	Organization      `gorm:"embedded"`
	BedCount          Number     `gorm:"type:numeric" json:"bed_count"`
	EmergencyService  Flag       `gorm:"not null" json:"emergency_service"`
	Specialties       StringList `gorm:"type:text[]" json:"specialties"`
	InsuranceAccepted StringList `gorm:"type:text[]" json:"insurance_accepted"`
	Languages         StringList `gorm:"type:text[]" json:"languages"`
}

func (ClinicDetails) TableName() string { return "clinic_details" }
func (ClinicDetails) Role() Role        { return RoleClinic }

// LaboratoryDetails holds attributes of medical laboratories
type LaboratoryDetails struct {
	Satellite           `gorm:"embedded"`
	Organization        `gorm:"embedded"`
	AccreditationNumber Text       `gorm:"type:varchar(64)" json:"accreditation_number"`
	Analyses            StringList `gorm:"type:text[]" json:"analyses"`
	HomeSampling        Flag       `gorm:"not null" json:"home_sampling"`
	ResultsOnline       Flag       `gorm:"not null" json:"results_online"`
}

func (LaboratoryDetails) TableName() string { return "laboratory_details" }
func (LaboratoryDetails) Role() Role        { return RoleLaboratory }

// PharmacyDetails holds attributes of pharmacies
type PharmacyDetails struct {
	Satellite          `gorm:"embedded"`
	Organization       `gorm:"embedded"`
	PharmacistInCharge Text       `gorm:"type:varchar(255)" json:"pharmacist_in_charge"`
	OnCall             Flag       `gorm:"not null" json:"on_call"`
	Delivery           Flag       `gorm:"not null" json:"delivery"`
	PaymentMethods     StringList `gorm:"type:text[]" json:"payment_methods"`
}

func (PharmacyDetails) TableName() string { return "pharmacy_details" }
func (PharmacyDetails) Role() Role        { return RolePharmacy }

// AssociationDetails holds attributes of patient and health associations
type AssociationDetails struct {
	Satellite         `gorm:"embedded"`
	Organization      `gorm:"embedded"`
	Mission           Text       `gorm:"type:text" json:"mission"`
	MemberCount       Number     `gorm:"type:numeric" json:"member_count"`
	AcceptsVolunteers Flag       `gorm:"not null" json:"accepts_volunteers"`
	Causes            StringList `gorm:"type:text[]" json:"causes"`
}

func (AssociationDetails) TableName() string { return "association_details" }
func (AssociationDetails) Role() Role        { return RoleAssociation }
