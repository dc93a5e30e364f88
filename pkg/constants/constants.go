package constants

const (
	Name        = "ReactPush"
	Author      = "ReactPush Contributors"
	Description = "Over-the-air bundle locator"
)

const Empty = "<empty>"
const None = "none"
