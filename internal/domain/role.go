package domain

// GlobalRole adalah role user di level aplikasi, bukan per organisasi.
type GlobalRole string

const (
	GlobalRoleUser  GlobalRole = "user"
	GlobalRoleAdmin GlobalRole = "admin"
)

func (r GlobalRole) IsAdmin() bool {
	return r == GlobalRoleAdmin
}

// Role adalah role membership di dalam satu organisasi.
// Enumerasi tertutup: string di luar daftar ini dianggap RoleMember
// saat parsing agar data lama yang bebas-teks tetap bisa dibaca.
type Role string

const (
	RoleOwner  Role = "Owner"
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
)

func ParseRole(s string) Role {
	switch Role(s) {
	case RoleOwner, RoleAdmin, RoleMember:
		return Role(s)
	default:
		return RoleMember
	}
}

// CanManage: Owner dan Admin boleh mengelola resource organisasi.
func (r Role) CanManage() bool {
	return r == RoleOwner || r == RoleAdmin
}
