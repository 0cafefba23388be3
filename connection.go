package accesslog

// ConnectMessage records a new client connection.
type ConnectMessage struct {
	MessageHeader

	// SourceAddress is the client's address.
	SourceAddress *string
	// SourcePort is the client's port.
	SourcePort *int64
	// TargetAddress is the server address the client connected to.
	TargetAddress *string
	// TargetPort is the server port the client connected to.
	TargetPort *int64
	// Protocol is the name of the protocol in use (e.g. "LDAP", "LDAPS").
	Protocol *string
	// ClientConnectionPolicy is the name of the client connection policy
	// assigned to the connection.
	ClientConnectionPolicy *string
}

// MessageType returns MessageTypeConnect.
func (*ConnectMessage) MessageType() MessageType { return MessageTypeConnect }

// DisconnectMessage records a closed client connection.
type DisconnectMessage struct {
	MessageHeader

	// Reason is the general reason the connection was closed.
	Reason *string
	// Message provides additional detail about the closure.
	Message *string
}

// MessageType returns MessageTypeDisconnect.
func (*DisconnectMessage) MessageType() MessageType { return MessageTypeDisconnect }

// SecurityNegotiationMessage records a security layer negotiation on an
// existing connection.
type SecurityNegotiationMessage struct {
	MessageHeader

	// Protocol is the negotiated security protocol (e.g. "TLSv1.3").
	Protocol *string
	// Cipher is the negotiated cipher suite.
	Cipher *string
	// Properties holds additional negotiation properties by name. The
	// log records properties as an ordered name/value list; duplicate
	// names resolve last-write-wins.
	Properties map[string]string
}

// MessageType returns MessageTypeSecurityNegotiation.
func (*SecurityNegotiationMessage) MessageType() MessageType {
	return MessageTypeSecurityNegotiation
}

// ClientCertificateMessage records a certificate chain presented by a
// client during security negotiation.
type ClientCertificateMessage struct {
	MessageHeader

	// PeerChain is the presented certificate chain, end-entity first.
	PeerChain []Certificate
	// AutoAuthenticatedAsDN is the DN the client was automatically
	// authenticated as based on the certificate, if any.
	AutoAuthenticatedAsDN *string
}

// MessageType returns MessageTypeClientCertificate.
func (*ClientCertificateMessage) MessageType() MessageType {
	return MessageTypeClientCertificate
}

func decodeConnect(r *Record, h MessageHeader) (*ConnectMessage, error) {
	m := &ConnectMessage{MessageHeader: h}
	var err error
	if m.SourceAddress, err = r.String(FieldSourceAddress); err != nil {
		return nil, err
	}
	if m.SourcePort, err = r.Int(FieldSourcePort); err != nil {
		return nil, err
	}
	if m.TargetAddress, err = r.String(FieldTargetAddress); err != nil {
		return nil, err
	}
	if m.TargetPort, err = r.Int(FieldTargetPort); err != nil {
		return nil, err
	}
	if m.Protocol, err = r.String(FieldProtocol); err != nil {
		return nil, err
	}
	if m.ClientConnectionPolicy, err = r.String(FieldClientConnectionPolicy); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeDisconnect(r *Record, h MessageHeader) (*DisconnectMessage, error) {
	m := &DisconnectMessage{MessageHeader: h}
	var err error
	if m.Reason, err = r.String(FieldDisconnectReason); err != nil {
		return nil, err
	}
	if m.Message, err = r.String(FieldDisconnectMessage); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSecurityNegotiation(r *Record, h MessageHeader) (*SecurityNegotiationMessage, error) {
	m := &SecurityNegotiationMessage{MessageHeader: h}
	var err error
	if m.Protocol, err = r.String(FieldProtocol); err != nil {
		return nil, err
	}
	if m.Cipher, err = r.String(FieldCipher); err != nil {
		return nil, err
	}

	props, err := r.ObjectList(FieldNegotiationProperties)
	if err != nil {
		return nil, err
	}
	if props != nil {
		m.Properties = make(map[string]string, len(props))
		for _, prop := range props {
			name, err := prop.String(FieldPropertyName)
			if err != nil {
				return nil, err
			}
			value, err := prop.String(FieldPropertyValue)
			if err != nil {
				return nil, err
			}
			if name == nil || value == nil {
				continue
			}
			m.Properties[*name] = *value
		}
	}
	return m, nil
}

func decodeClientCertificate(r *Record, h MessageHeader) (*ClientCertificateMessage, error) {
	m := &ClientCertificateMessage{MessageHeader: h}
	var err error
	if m.PeerChain, err = decodeCertificateChain(r); err != nil {
		return nil, err
	}
	if m.AutoAuthenticatedAsDN, err = r.String(FieldAutoAuthenticatedAs); err != nil {
		return nil, err
	}
	return m, nil
}
