package cover

type SetCoverParams struct {
	Query   string
	Cover   string
	Preview string
}
