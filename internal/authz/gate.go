// Package authz gates the disclosure of voter identities. Vote counts are
// public on the rendered controls; the who-voted-how listing is not.
package authz

// Authorized reports whether any of the requester's roles appears in the
// configured staff role list. Empty inputs yield false.
func Authorized(memberRoleIDs, staffRoleIDs []string) bool {
	if len(memberRoleIDs) == 0 || len(staffRoleIDs) == 0 {
		return false
	}
	staff := make(map[string]struct{}, len(staffRoleIDs))
	for _, id := range staffRoleIDs {
		staff[id] = struct{}{}
	}
	for _, id := range memberRoleIDs {
		if _, ok := staff[id]; ok {
			return true
		}
	}
	return false
}
