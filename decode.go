package accesslog

// Decode decodes one raw access log record into its typed message.
//
// The record must carry a parseable timestamp and a recognized
// message-type token; operation-scoped message types must also carry a
// recognized operation-type token, and the pair must be legal (see the
// package documentation for the pairing rules). Any field-level failure
// aborts the whole record: Decode never returns a partially populated
// message.
func Decode(r *Record) (Message, error) {
	token, err := r.RequiredString(FieldMessageType)
	if err != nil {
		return nil, err
	}
	mt, ok := ParseMessageType(token)
	if !ok {
		return nil, &InvalidEnumError{Field: FieldMessageType, Value: token}
	}

	if !mt.operationScoped() {
		h, err := decodeMessageHeader(r)
		if err != nil {
			return nil, err
		}
		var m Message
		switch mt {
		case MessageTypeConnect:
			m, err = decodeConnect(r, h)
		case MessageTypeDisconnect:
			m, err = decodeDisconnect(r, h)
		case MessageTypeSecurityNegotiation:
			m, err = decodeSecurityNegotiation(r, h)
		case MessageTypeClientCertificate:
			m, err = decodeClientCertificate(r, h)
		case MessageTypeEntryRebalancingRequest:
			m, err = decodeEntryRebalancingRequest(r, h)
		default:
			m, err = decodeEntryRebalancingResult(r, h)
		}
		if err != nil {
			return nil, err
		}
		return m, nil
	}

	token, err = r.RequiredString(FieldOperationType)
	if err != nil {
		return nil, err
	}
	ot, ok := ParseOperationType(token)
	if !ok {
		return nil, &InvalidEnumError{Field: FieldOperationType, Value: token}
	}
	if !operationLegal(mt, ot) {
		return nil, &IllegalCombinationError{MessageType: mt, OperationType: ot}
	}

	h, err := decodeOperationHeader(r)
	if err != nil {
		return nil, err
	}

	switch mt {
	case MessageTypeRequest:
		return decodeRequest(r, h, ot)
	case MessageTypeForward:
		return decodeForward(r, h, ot)
	case MessageTypeForwardFailed:
		return decodeForwardFailed(r, h, ot)
	case MessageTypeResult:
		return decodeResult(r, h, ot)
	case MessageTypeAssuranceComplete:
		return decodeAssuranceCompleted(r, h, ot)
	case MessageTypeEntry:
		m, err := decodeSearchEntry(r, h)
		if err != nil {
			return nil, err
		}
		return m, nil
	case MessageTypeReference:
		m, err := decodeSearchReference(r, h)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		m, err := decodeIntermediateResponse(r, h, ot)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func decodeRequest(r *Record, h OperationHeader, ot OperationType) (Message, error) {
	switch ot {
	case OperationTypeAbandon:
		m, err := newAbandonRequest(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeAdd:
		m, err := newAddRequest(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeBind:
		m, err := newBindRequest(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeCompare:
		m, err := newCompareRequest(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeDelete:
		m, err := newDeleteRequest(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeExtended:
		m, err := newExtendedRequest(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeModify:
		m, err := newModifyRequest(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeModifyDN:
		m, err := newModifyDNRequest(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeSearch:
		m, err := newSearchRequest(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	default:
		m, err := newUnbindRequest(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	}
}

func decodeForward(r *Record, h OperationHeader, ot OperationType) (Message, error) {
	switch ot {
	case OperationTypeAbandon:
		m, err := newAbandonForward(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeAdd:
		m, err := newAddForward(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeBind:
		m, err := newBindForward(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeCompare:
		m, err := newCompareForward(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeDelete:
		m, err := newDeleteForward(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeExtended:
		m, err := newExtendedForward(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeModify:
		m, err := newModifyForward(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeModifyDN:
		m, err := newModifyDNForward(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	default:
		m, err := newSearchForward(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	}
}

func decodeForwardFailed(r *Record, h OperationHeader, ot OperationType) (Message, error) {
	failure, err := decodeForwardFailure(r)
	if err != nil {
		return nil, err
	}
	switch ot {
	case OperationTypeAbandon:
		fwd, err := newAbandonForward(r, h)
		if err != nil {
			return nil, err
		}
		return &AbandonForwardFailedMessage{AbandonForwardMessage: fwd, ForwardFailure: failure}, nil
	case OperationTypeAdd:
		fwd, err := newAddForward(r, h)
		if err != nil {
			return nil, err
		}
		return &AddForwardFailedMessage{AddForwardMessage: fwd, ForwardFailure: failure}, nil
	case OperationTypeBind:
		fwd, err := newBindForward(r, h)
		if err != nil {
			return nil, err
		}
		return &BindForwardFailedMessage{BindForwardMessage: fwd, ForwardFailure: failure}, nil
	case OperationTypeCompare:
		fwd, err := newCompareForward(r, h)
		if err != nil {
			return nil, err
		}
		return &CompareForwardFailedMessage{CompareForwardMessage: fwd, ForwardFailure: failure}, nil
	case OperationTypeDelete:
		fwd, err := newDeleteForward(r, h)
		if err != nil {
			return nil, err
		}
		return &DeleteForwardFailedMessage{DeleteForwardMessage: fwd, ForwardFailure: failure}, nil
	case OperationTypeExtended:
		fwd, err := newExtendedForward(r, h)
		if err != nil {
			return nil, err
		}
		return &ExtendedForwardFailedMessage{ExtendedForwardMessage: fwd, ForwardFailure: failure}, nil
	case OperationTypeModify:
		fwd, err := newModifyForward(r, h)
		if err != nil {
			return nil, err
		}
		return &ModifyForwardFailedMessage{ModifyForwardMessage: fwd, ForwardFailure: failure}, nil
	case OperationTypeModifyDN:
		fwd, err := newModifyDNForward(r, h)
		if err != nil {
			return nil, err
		}
		return &ModifyDNForwardFailedMessage{ModifyDNForwardMessage: fwd, ForwardFailure: failure}, nil
	default:
		fwd, err := newSearchForward(r, h)
		if err != nil {
			return nil, err
		}
		return &SearchForwardFailedMessage{SearchForwardMessage: fwd, ForwardFailure: failure}, nil
	}
}

func decodeResult(r *Record, h OperationHeader, ot OperationType) (Message, error) {
	switch ot {
	case OperationTypeAbandon:
		m, err := newAbandonResult(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeAdd:
		m, err := newAddResult(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeBind:
		m, err := newBindResult(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeCompare:
		m, err := newCompareResult(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeDelete:
		m, err := newDeleteResult(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeExtended:
		m, err := newExtendedResult(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeModify:
		m, err := newModifyResult(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case OperationTypeModifyDN:
		m, err := newModifyDNResult(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	default:
		m, err := newSearchResult(r, h)
		if err != nil {
			return nil, err
		}
		return &m, nil
	}
}

func decodeAssuranceCompleted(r *Record, h OperationHeader, ot OperationType) (Message, error) {
	fields, err := decodeAssuranceFields(r)
	if err != nil {
		return nil, err
	}
	switch ot {
	case OperationTypeAdd:
		res, err := newAddResult(r, h)
		if err != nil {
			return nil, err
		}
		return &AddAssuranceCompletedMessage{AddResultMessage: res, AssuranceFields: fields}, nil
	case OperationTypeDelete:
		res, err := newDeleteResult(r, h)
		if err != nil {
			return nil, err
		}
		return &DeleteAssuranceCompletedMessage{DeleteResultMessage: res, AssuranceFields: fields}, nil
	case OperationTypeModify:
		res, err := newModifyResult(r, h)
		if err != nil {
			return nil, err
		}
		return &ModifyAssuranceCompletedMessage{ModifyResultMessage: res, AssuranceFields: fields}, nil
	default:
		res, err := newModifyDNResult(r, h)
		if err != nil {
			return nil, err
		}
		return &ModifyDNAssuranceCompletedMessage{ModifyDNResultMessage: res, AssuranceFields: fields}, nil
	}
}
