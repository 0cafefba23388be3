package accesslog

import (
	"fmt"
)

// ResultCode is an LDAP result code as recorded in the access log.
// The named values cover RFC 4511 plus the cancel codes from RFC 3909;
// unrecognized numeric values are preserved as-is so that logs from newer
// servers still decode.
type ResultCode int

const (
	ResultSuccess                      ResultCode = 0
	ResultOperationsError              ResultCode = 1
	ResultProtocolError                ResultCode = 2
	ResultTimeLimitExceeded            ResultCode = 3
	ResultSizeLimitExceeded            ResultCode = 4
	ResultCompareFalse                 ResultCode = 5
	ResultCompareTrue                  ResultCode = 6
	ResultAuthMethodNotSupported       ResultCode = 7
	ResultStrongerAuthRequired         ResultCode = 8
	ResultReferral                     ResultCode = 10
	ResultAdminLimitExceeded           ResultCode = 11
	ResultUnavailableCriticalExtension ResultCode = 12
	ResultConfidentialityRequired      ResultCode = 13
	ResultSaslBindInProgress           ResultCode = 14
	ResultNoSuchAttribute              ResultCode = 16
	ResultUndefinedAttributeType       ResultCode = 17
	ResultInappropriateMatching        ResultCode = 18
	ResultConstraintViolation          ResultCode = 19
	ResultAttributeOrValueExists       ResultCode = 20
	ResultInvalidAttributeSyntax       ResultCode = 21
	ResultNoSuchObject                 ResultCode = 32
	ResultAliasProblem                 ResultCode = 33
	ResultInvalidDNSyntax              ResultCode = 34
	ResultAliasDereferencingProblem    ResultCode = 36
	ResultInappropriateAuthentication  ResultCode = 48
	ResultInvalidCredentials           ResultCode = 49
	ResultInsufficientAccessRights     ResultCode = 50
	ResultBusy                         ResultCode = 51
	ResultUnavailable                  ResultCode = 52
	ResultUnwillingToPerform           ResultCode = 53
	ResultLoopDetect                   ResultCode = 54
	ResultSortControlMissing           ResultCode = 60
	ResultOffsetRangeError             ResultCode = 61
	ResultNamingViolation              ResultCode = 64
	ResultObjectClassViolation         ResultCode = 65
	ResultNotAllowedOnNonLeaf          ResultCode = 66
	ResultNotAllowedOnRDN              ResultCode = 67
	ResultEntryAlreadyExists           ResultCode = 68
	ResultObjectClassModsProhibited    ResultCode = 69
	ResultAffectsMultipleDSAs          ResultCode = 71
	ResultVirtualListViewError         ResultCode = 76
	ResultOther                        ResultCode = 80
	ResultCanceled                     ResultCode = 118
	ResultNoSuchOperation              ResultCode = 119
	ResultTooLate                      ResultCode = 120
	ResultCannotCancel                 ResultCode = 121
	ResultAssertionFailed              ResultCode = 122
	ResultAuthorizationDenied          ResultCode = 123
	ResultNoOperation                  ResultCode = 16654
)

// resultCodeNames maps each named result code to its symbolic log token.
var resultCodeNames = map[ResultCode]string{
	ResultSuccess:                      "Success",
	ResultOperationsError:              "OperationsError",
	ResultProtocolError:                "ProtocolError",
	ResultTimeLimitExceeded:            "TimeLimitExceeded",
	ResultSizeLimitExceeded:            "SizeLimitExceeded",
	ResultCompareFalse:                 "CompareFalse",
	ResultCompareTrue:                  "CompareTrue",
	ResultAuthMethodNotSupported:       "AuthMethodNotSupported",
	ResultStrongerAuthRequired:         "StrongerAuthRequired",
	ResultReferral:                     "Referral",
	ResultAdminLimitExceeded:           "AdminLimitExceeded",
	ResultUnavailableCriticalExtension: "UnavailableCriticalExtension",
	ResultConfidentialityRequired:      "ConfidentialityRequired",
	ResultSaslBindInProgress:           "SaslBindInProgress",
	ResultNoSuchAttribute:              "NoSuchAttribute",
	ResultUndefinedAttributeType:       "UndefinedAttributeType",
	ResultInappropriateMatching:        "InappropriateMatching",
	ResultConstraintViolation:          "ConstraintViolation",
	ResultAttributeOrValueExists:       "AttributeOrValueExists",
	ResultInvalidAttributeSyntax:       "InvalidAttributeSyntax",
	ResultNoSuchObject:                 "NoSuchObject",
	ResultAliasProblem:                 "AliasProblem",
	ResultInvalidDNSyntax:              "InvalidDNSyntax",
	ResultAliasDereferencingProblem:    "AliasDereferencingProblem",
	ResultInappropriateAuthentication:  "InappropriateAuthentication",
	ResultInvalidCredentials:           "InvalidCredentials",
	ResultInsufficientAccessRights:     "InsufficientAccessRights",
	ResultBusy:                         "Busy",
	ResultUnavailable:                  "Unavailable",
	ResultUnwillingToPerform:           "UnwillingToPerform",
	ResultLoopDetect:                   "LoopDetect",
	ResultSortControlMissing:           "SortControlMissing",
	ResultOffsetRangeError:             "OffsetRangeError",
	ResultNamingViolation:              "NamingViolation",
	ResultObjectClassViolation:         "ObjectClassViolation",
	ResultNotAllowedOnNonLeaf:          "NotAllowedOnNonLeaf",
	ResultNotAllowedOnRDN:              "NotAllowedOnRDN",
	ResultEntryAlreadyExists:           "EntryAlreadyExists",
	ResultObjectClassModsProhibited:    "ObjectClassModsProhibited",
	ResultAffectsMultipleDSAs:          "AffectsMultipleDSAs",
	ResultVirtualListViewError:         "VirtualListViewError",
	ResultOther:                        "Other",
	ResultCanceled:                     "Canceled",
	ResultNoSuchOperation:              "NoSuchOperation",
	ResultTooLate:                      "TooLate",
	ResultCannotCancel:                 "CannotCancel",
	ResultAssertionFailed:              "AssertionFailed",
	ResultAuthorizationDenied:          "AuthorizationDenied",
	ResultNoOperation:                  "NoOperation",
}

// resultCodesByName is the inverse of resultCodeNames, used to resolve
// records that carry only the symbolic form.
var resultCodesByName = func() map[string]ResultCode {
	m := make(map[string]ResultCode, len(resultCodeNames))
	for code, name := range resultCodeNames {
		m[name] = code
	}
	return m
}()

// String returns the symbolic name of the result code.
func (r ResultCode) String() string {
	if name, ok := resultCodeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(r))
}

// decodeResultCode resolves the numeric result-code field and the
// symbolic result-code-name field into one result code, or returns nil
// if neither is present.
//
// The numeric value wins: a recognized or unrecognized numeric value is
// used as-is, which keeps logs from servers with newer result codes
// decodable. A record carrying only a recognized symbolic name resolves
// through the name table; an unrecognized name with no numeric value
// fails the record.
func decodeResultCode(r *Record) (*ResultCode, error) {
	value, err := r.Int(FieldResultCode)
	if err != nil {
		return nil, err
	}
	name, err := r.String(FieldResultCodeName)
	if err != nil {
		return nil, err
	}

	if value != nil {
		code := ResultCode(*value)
		return &code, nil
	}
	if name != nil {
		code, ok := resultCodesByName[*name]
		if !ok {
			return nil, &FieldError{Field: FieldResultCodeName, Expected: "known result code name"}
		}
		return &code, nil
	}
	return nil, nil
}
