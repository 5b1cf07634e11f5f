package domain

// Permission is an action a role may be allowed to perform.
type Permission int

const (
	PermCreateNote Permission = iota
	PermReadNote
	PermListNotes
	PermUpdateNote
	PermDeleteNote
	PermViewTenant
	PermViewUsers
	PermInviteUsers
	PermManageInvitations
	PermUpgradeSubscription

	permissionCount
)

type roleSet uint8

const (
	admin roleSet = 1 << iota
	member
)

func roleBit(r Role) roleSet {
	switch r {
	case RoleAdmin:
		return admin
	case RoleMember:
		return member
	}
	return 0
}

var permissionRoles = [permissionCount]roleSet{
	PermCreateNote:          admin | member,
	PermReadNote:            admin | member,
	PermListNotes:           admin | member,
	PermUpdateNote:          admin | member,
	PermDeleteNote:          admin | member,
	PermViewTenant:          admin | member,
	PermViewUsers:           admin,
	PermInviteUsers:         admin,
	PermManageInvitations:   admin,
	PermUpgradeSubscription: admin,
}

var permissionNames = [permissionCount]string{
	PermCreateNote:          "create_note",
	PermReadNote:            "read_note",
	PermListNotes:           "list_notes",
	PermUpdateNote:          "update_note",
	PermDeleteNote:          "delete_note",
	PermViewTenant:          "view_tenant",
	PermViewUsers:           "view_users",
	PermInviteUsers:         "invite_users",
	PermManageInvitations:   "manage_invitations",
	PermUpgradeSubscription: "upgrade_subscription",
}

func (p Permission) String() string {
	if p < 0 || p >= permissionCount {
		return "unknown"
	}
	return permissionNames[p]
}

// HasPermission reports whether role is granted perm. Unknown roles and
// permissions are denied.
func HasPermission(role Role, perm Permission) bool {
	if perm < 0 || perm >= permissionCount {
		return false
	}
	bit := roleBit(role)
	return bit != 0 && permissionRoles[perm]&bit != 0
}

// CanPerformAction checks perm for id and, for non-admins, that the resource
// identified by ownerID belongs to them. An empty ownerID skips the
// ownership check.
func CanPerformAction(id Identity, perm Permission, ownerID string) error {
	if !HasPermission(id.Role, perm) {
		return Forbidden("Insufficient permissions")
	}
	if id.Role == RoleAdmin || ownerID == "" {
		return nil
	}
	if ownerID != id.UserID {
		return Forbidden("You can only modify your own resources")
	}
	return nil
}
