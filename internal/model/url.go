package model

import "strconv"

// ResourceURL joins a collection path and an id: "/api/v1/vendors" + 3 -> "/api/v1/vendors/3".
func ResourceURL(base string, id int64) string {
	return base + "/" + strconv.FormatInt(id, 10)
}
