package models

// SrvRecordResponse is one SRV record as returned by the API.
type SrvRecordResponse struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Priority int    `json:"priority"`
	Weight   int    `json:"weight"`
}

// SrvLookupResponse is the response for GET /srv.
type SrvLookupResponse struct {
	Name      string              `json:"name"`
	Transport string              `json:"transport"`
	Count     int                 `json:"count"`
	Records   []SrvRecordResponse `json:"records"`
}

// MethodCallRequest is the body of POST /channel/{method}.
// Name is the service name for resolveSrv.
type MethodCallRequest struct {
	Name string `json:"name" example:"_sip._tcp.example.com"`
}
