package accesslog

import (
	"time"
)

// LogType is the log type shared by every decoded message: all messages
// in this package come from the server's access log.
const LogType = "access"

// Message is the common interface for every decoded access log message.
// Every message carries the log type LogType alongside its per-record
// message type. Decoded messages are immutable: they are constructed
// once from a raw record and must not be modified afterwards.
type Message interface {
	// MessageType returns the message type discriminator for this message.
	MessageType() MessageType
	// Header returns the fields common to every message type.
	Header() MessageHeader
}

// OperationMessage is the interface for messages scoped to an LDAP
// operation.
type OperationMessage interface {
	Message
	// OperationType returns the operation type discriminator.
	OperationType() OperationType
	// Operation returns the fields common to operation-scoped messages.
	Operation() OperationHeader
}

// MessageHeader holds the fields common to every access log message.
// Only the timestamp is guaranteed to be present.
type MessageHeader struct {
	// Timestamp is the time the event was logged. Always present.
	Timestamp time.Time
	// Product is the server product name.
	Product *string
	// InstanceName is the name of the server instance.
	InstanceName *string
	// StartupID identifies the server's current startup generation.
	StartupID *string
	// ThreadID identifies the worker thread that logged the event.
	ThreadID *int64
	// ConnectionID identifies the client connection.
	ConnectionID *int64
}

// Header returns the header itself, satisfying the Message interface for
// every struct that embeds MessageHeader.
func (h MessageHeader) Header() MessageHeader {
	return h
}

// OperationHeader holds the fields common to operation-scoped access log
// messages.
type OperationHeader struct {
	MessageHeader

	// OperationID identifies the operation within its connection.
	OperationID *int64
	// MessageID is the LDAP message ID of the operation.
	MessageID *int64
	// TriggeredByConnectionID identifies the connection whose activity
	// triggered this internal operation, if any.
	TriggeredByConnectionID *int64
	// TriggeredByOperationID identifies the operation that triggered this
	// internal operation, if any.
	TriggeredByOperationID *int64
	// Origin describes where the operation originated (e.g. an internal
	// component or a replicated change).
	Origin *string
	// RequesterIP is the IP address of the requesting client.
	RequesterIP *string
	// RequesterDN is the authorization DN of the requesting client.
	RequesterDN *string
	// RequestControlOIDs holds the OIDs of the request controls, unordered.
	RequestControlOIDs map[string]struct{}
	// UsingAdminSessionWorkerThread indicates whether the operation was
	// processed by a worker thread reserved for administrative sessions.
	UsingAdminSessionWorkerThread *bool
	// AdministrativeOperationMessage is the message attached to an
	// administrative operation, if any.
	AdministrativeOperationMessage *string
	// IntermediateClientRequest is the decoded intermediate client
	// request control, if the request included one.
	IntermediateClientRequest *IntermediateClientRequest
	// OperationPurpose is the decoded operation purpose request control,
	// if the request included one.
	OperationPurpose *OperationPurpose
}

// Operation returns the operation header itself, satisfying the
// OperationMessage interface for every struct that embeds OperationHeader.
func (h OperationHeader) Operation() OperationHeader {
	return h
}

// decodeMessageHeader extracts the fields common to every message type.
// The timestamp is required; everything else is optional.
func decodeMessageHeader(r *Record) (MessageHeader, error) {
	var h MessageHeader

	ts, err := r.Date(FieldTimestamp)
	if err != nil {
		return h, err
	}
	if ts == nil {
		return h, &MissingFieldError{Field: FieldTimestamp}
	}
	h.Timestamp = *ts

	if h.Product, err = r.String(FieldProduct); err != nil {
		return h, err
	}
	if h.InstanceName, err = r.String(FieldInstanceName); err != nil {
		return h, err
	}
	if h.StartupID, err = r.String(FieldStartupID); err != nil {
		return h, err
	}
	if h.ThreadID, err = r.Int(FieldThreadID); err != nil {
		return h, err
	}
	if h.ConnectionID, err = r.Int(FieldConnectionID); err != nil {
		return h, err
	}

	return h, nil
}

// decodeOperationHeader extracts the fields common to operation-scoped
// message types, including the embedded request controls.
func decodeOperationHeader(r *Record) (OperationHeader, error) {
	var h OperationHeader

	mh, err := decodeMessageHeader(r)
	if err != nil {
		return h, err
	}
	h.MessageHeader = mh

	if h.OperationID, err = r.Int(FieldOperationID); err != nil {
		return h, err
	}
	if h.MessageID, err = r.Int(FieldMessageID); err != nil {
		return h, err
	}
	if h.TriggeredByConnectionID, err = r.Int(FieldTriggeredByConnectionID); err != nil {
		return h, err
	}
	if h.TriggeredByOperationID, err = r.Int(FieldTriggeredByOperationID); err != nil {
		return h, err
	}
	if h.Origin, err = r.String(FieldOrigin); err != nil {
		return h, err
	}
	if h.RequesterIP, err = r.String(FieldRequesterIP); err != nil {
		return h, err
	}
	if h.RequesterDN, err = r.String(FieldRequesterDN); err != nil {
		return h, err
	}
	if h.RequestControlOIDs, err = r.StringSet(FieldRequestControlOIDs); err != nil {
		return h, err
	}
	if h.UsingAdminSessionWorkerThread, err = r.Bool(FieldUsingAdminSessionWorkerThread); err != nil {
		return h, err
	}
	if h.AdministrativeOperationMessage, err = r.String(FieldAdministrativeOperation); err != nil {
		return h, err
	}
	if h.IntermediateClientRequest, err = decodeIntermediateClientRequest(r, FieldIntermediateClientRequest); err != nil {
		return h, err
	}
	if h.OperationPurpose, err = decodeOperationPurpose(r); err != nil {
		return h, err
	}

	return h, nil
}
