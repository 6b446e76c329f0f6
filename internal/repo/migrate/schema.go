// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "assignment_date", Type: field.TypeTime},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "assigned_by_id", Type: field.TypeUUID, Nullable: true},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assignments_doctors_assignments",
				Columns:    []*schema.Column{AssignmentsColumns[3]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "assignments_patients_assignments",
				Columns:    []*schema.Column{AssignmentsColumns[4]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "assignments_users_assignments_made",
				Columns:    []*schema.Column{AssignmentsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_patient_id_doctor_id",
				Unique:  true,
				Columns: []*schema.Column{AssignmentsColumns[4], AssignmentsColumns[3]},
			},
			{
				Name:    "assignment_patient_id",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[4]},
			},
			{
				Name:    "assignment_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[3]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 254},
		{Name: "phone_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "specialization", Type: field.TypeString, Size: 100},
		{Name: "license_number", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "office_address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "office_hours", Type: field.TypeString, Nullable: true, Size: 200},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "date_of_birth", Type: field.TypeTime},
		{Name: "gender", Type: field.TypeEnum, Enums: []string{"M", "F", "O"}},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "phone_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 254},
		{Name: "medical_history", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "emergency_contact_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "emergency_contact_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "created_by_id", Type: field.TypeUUID},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_patients",
				Columns:    []*schema.Column{PatientsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_created_by_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[13]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "is_superuser", Type: field.TypeBool, Default: false},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssignmentsTable,
		DoctorsTable,
		PatientsTable,
		UsersTable,
	}
)

func init() {
	AssignmentsTable.ForeignKeys[0].RefTable = DoctorsTable
	AssignmentsTable.ForeignKeys[1].RefTable = PatientsTable
	AssignmentsTable.ForeignKeys[2].RefTable = UsersTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
}
