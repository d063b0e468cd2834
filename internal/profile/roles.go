// Package profile resolves which role partition an authenticated account
// belongs to. Profiles live in three disjoint partitions (admins, teachers,
// students) keyed by account id.
package profile

// Role is the resolved role of an authenticated user
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// Probe pairs a partition name with the role it implies
type Probe struct {
	Partition string
	Role      Role
}

// ProbeOrder is the fixed priority order for role resolution. Admin is checked
// first so that an account present in more than one partition always resolves
// to the highest-privilege role.
var ProbeOrder = []Probe{
	{Partition: "admins", Role: RoleAdmin},
	{Partition: "teachers", Role: RoleTeacher},
	{Partition: "students", Role: RoleStudent},
}
