package dto

type HealthResponse struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	GoVersion string `json:"goVersion"`
	Pid       int    `json:"pid"`
	AllocMB   uint64 `json:"allocMb"`
}
