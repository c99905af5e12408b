package constants

const (
	RoleUser      = "user"
	RoleStaff     = "staff"
	RoleLibrarian = "librarian"
	RoleAdmin     = "admin"
	RoleOwner     = "owner"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleStaff,
		RoleLibrarian,
		RoleAdmin,
		RoleOwner,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleLibrarian,
		RoleAdmin,
		RoleOwner,
	}

	LibrarianAndAbove = []string{
		RoleLibrarian,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
