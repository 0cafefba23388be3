// Package accesslog decodes the structured access log produced by the Oba
// directory server into strongly-typed, immutable message values.
//
// The access log is a stream of newline-delimited JSON records, one record
// per protocol event: connections, TLS negotiation, client certificates,
// entry rebalancing, and every stage of every LDAP operation. Each record
// carries a mandatory "timestamp" and "message-type" field, and, for
// operation-scoped message types, a mandatory "operation-type" field.
//
// # Reading a Log
//
// Use Open to read from a file, or NewReader to read from any io.Reader:
//
//	reader, err := accesslog.Open("access.log")
//	if err != nil {
//	    // handle error
//	}
//	defer reader.Close()
//
//	for {
//	    msg, err := reader.ReadMessage()
//	    if err == io.EOF {
//	        break
//	    }
//	    var recErr *accesslog.RecordError
//	    if errors.As(err, &recErr) {
//	        // a malformed or invalid record; the reader stays positioned
//	        // at the next record, so the caller may skip or abort
//	        continue
//	    }
//	    if err != nil {
//	        // source I/O failure; the reader is no longer usable
//	        break
//	    }
//	    switch m := msg.(type) {
//	    case *accesslog.ConnectMessage:
//	        // handle connect
//	    case *accesslog.SearchResultMessage:
//	        // handle search result
//	    }
//	}
//
// # Message Hierarchy
//
// Every decoded message implements the Message interface. Messages that
// describe an LDAP operation additionally implement OperationMessage.
// There is one concrete type per legal (message-type, operation-type)
// pair; the pairing rules are enforced during decoding:
//
//   - REQUEST and INTERMEDIATE_RESPONSE exist for every operation type
//   - FORWARD, FORWARD_FAILED and RESULT exist for every operation type
//     except UNBIND (unbind is a one-way notification)
//   - ASSURANCE_COMPLETE exists only for ADD, DELETE, MODIFY and MODDN
//   - ENTRY and REFERENCE exist only for SEARCH
//
// # Optional Fields
//
// Every field other than the timestamp and the type discriminators is
// optional. Absent scalar fields decode to nil pointers, absent lists to
// nil slices, and absent sets to nil maps; a field that is present with
// the wrong JSON kind fails the record with a FieldError. Decoded
// messages are never partially populated: any field-level failure aborts
// the whole record, with the single exception of certificate chains,
// where an unparseable certificate field degrades to nil so that
// nonconforming third-party certificates do not poison the record.
package accesslog
