package accesslog

// maxControlNestingDepth bounds the downstream-request/upstream-response
// recursion in intermediate client controls. A control chain deeper than
// this is truncated: the embedded control past the bound decodes to nil.
const maxControlNestingDepth = 10

// IntermediateClientRequest is the decoded form of an intermediate client
// request control attached to an operation. It describes the chain of
// clients and intermediaries (e.g. the Directory Proxy Server) through
// which a request passed before reaching the server.
type IntermediateClientRequest struct {
	// DownstreamRequest is the control embedded by the next client
	// further from the server, if any. Nesting is truncated at
	// maxControlNestingDepth levels.
	DownstreamRequest *IntermediateClientRequest
	// DownstreamClientAddress is the address of the downstream client.
	DownstreamClientAddress *string
	// DownstreamClientSecure indicates whether the downstream connection
	// is secure.
	DownstreamClientSecure *bool
	// ClientIdentity is the authorization identity of the client.
	ClientIdentity *string
	// ClientName is the name of the client application.
	ClientName *string
	// ClientSessionID is the client's session identifier.
	ClientSessionID *string
	// ClientRequestID is the client's request identifier.
	ClientRequestID *string
}

// IntermediateClientResponse is the decoded form of an intermediate
// client response control returned with an operation result.
type IntermediateClientResponse struct {
	// UpstreamResponse is the control embedded by the next server
	// further from the client, if any. Nesting is truncated at
	// maxControlNestingDepth levels.
	UpstreamResponse *IntermediateClientResponse
	// UpstreamServerAddress is the address of the upstream server.
	UpstreamServerAddress *string
	// UpstreamServerSecure indicates whether the upstream connection is
	// secure.
	UpstreamServerSecure *bool
	// ResponseName is the name of the responding application.
	ResponseName *string
	// SessionID is the server's session identifier.
	SessionID *string
	// ResponseID is the server's response identifier.
	ResponseID *string
}

// OperationPurpose is the decoded form of an operation purpose request
// control, identifying the application and code path that issued a
// request.
type OperationPurpose struct {
	// ApplicationName is the name of the requesting application.
	ApplicationName *string
	// ApplicationVersion is the version of the requesting application.
	ApplicationVersion *string
	// CodeLocation identifies the point in the application code that
	// issued the request.
	CodeLocation *string
	// RequestPurpose describes why the request was issued.
	RequestPurpose *string
}

// decodeIntermediateClientRequest decodes the named intermediate client
// request control field, or returns nil if it is absent.
func decodeIntermediateClientRequest(r *Record, field string) (*IntermediateClientRequest, error) {
	return decodeIntermediateClientRequestDepth(r, field, 0)
}

func decodeIntermediateClientRequestDepth(r *Record, field string, depth int) (*IntermediateClientRequest, error) {
	obj, err := r.Object(field)
	if err != nil {
		return nil, err
	}
	if obj == nil || depth >= maxControlNestingDepth {
		return nil, nil
	}

	c := &IntermediateClientRequest{}
	if c.DownstreamRequest, err = decodeIntermediateClientRequestDepth(obj, FieldDownstreamRequest, depth+1); err != nil {
		return nil, err
	}
	if c.DownstreamClientAddress, err = obj.String(FieldDownstreamClientAddress); err != nil {
		return nil, err
	}
	if c.DownstreamClientSecure, err = obj.Bool(FieldDownstreamClientSecure); err != nil {
		return nil, err
	}
	if c.ClientIdentity, err = obj.String(FieldClientIdentity); err != nil {
		return nil, err
	}
	if c.ClientName, err = obj.String(FieldClientName); err != nil {
		return nil, err
	}
	if c.ClientSessionID, err = obj.String(FieldClientSessionID); err != nil {
		return nil, err
	}
	if c.ClientRequestID, err = obj.String(FieldClientRequestID); err != nil {
		return nil, err
	}
	return c, nil
}

// decodeIntermediateClientResponse decodes the named intermediate client
// response control field, or returns nil if it is absent.
func decodeIntermediateClientResponse(r *Record, field string) (*IntermediateClientResponse, error) {
	return decodeIntermediateClientResponseDepth(r, field, 0)
}

func decodeIntermediateClientResponseDepth(r *Record, field string, depth int) (*IntermediateClientResponse, error) {
	obj, err := r.Object(field)
	if err != nil {
		return nil, err
	}
	if obj == nil || depth >= maxControlNestingDepth {
		return nil, nil
	}

	c := &IntermediateClientResponse{}
	if c.UpstreamResponse, err = decodeIntermediateClientResponseDepth(obj, FieldUpstreamResponse, depth+1); err != nil {
		return nil, err
	}
	if c.UpstreamServerAddress, err = obj.String(FieldUpstreamServerAddress); err != nil {
		return nil, err
	}
	if c.UpstreamServerSecure, err = obj.Bool(FieldUpstreamServerSecure); err != nil {
		return nil, err
	}
	if c.ResponseName, err = obj.String(FieldResponseName); err != nil {
		return nil, err
	}
	if c.SessionID, err = obj.String(FieldResponseSessionID); err != nil {
		return nil, err
	}
	if c.ResponseID, err = obj.String(FieldResponseRequestID); err != nil {
		return nil, err
	}
	return c, nil
}

// decodeOperationPurpose decodes the operation purpose control field, or
// returns nil if it is absent.
func decodeOperationPurpose(r *Record) (*OperationPurpose, error) {
	obj, err := r.Object(FieldOperationPurpose)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}

	p := &OperationPurpose{}
	if p.ApplicationName, err = obj.String(FieldApplicationName); err != nil {
		return nil, err
	}
	if p.ApplicationVersion, err = obj.String(FieldApplicationVersion); err != nil {
		return nil, err
	}
	if p.CodeLocation, err = obj.String(FieldCodeLocation); err != nil {
		return nil, err
	}
	if p.RequestPurpose, err = obj.String(FieldRequestPurpose); err != nil {
		return nil, err
	}
	return p, nil
}
