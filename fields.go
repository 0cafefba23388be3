package accesslog

// Field names used in access log records. Required fields are
// FieldTimestamp and FieldMessageType, plus FieldOperationType for
// operation-scoped message types; everything else is optional.
const (
	FieldTimestamp     = "timestamp"
	FieldMessageType   = "message-type"
	FieldOperationType = "operation-type"

	// Fields common to every message type
	FieldProduct      = "product"
	FieldInstanceName = "instance-name"
	FieldStartupID    = "startup-id"
	FieldThreadID     = "thread-id"
	FieldConnectionID = "connection-id"

	// Fields common to operation-scoped message types
	FieldOperationID                   = "operation-id"
	FieldMessageID                     = "message-id"
	FieldTriggeredByConnectionID       = "triggered-by-connection-id"
	FieldTriggeredByOperationID        = "triggered-by-operation-id"
	FieldOrigin                        = "origin"
	FieldRequesterIP                   = "requester-ip"
	FieldRequesterDN                   = "requester-dn"
	FieldRequestControlOIDs            = "request-control-oids"
	FieldUsingAdminSessionWorkerThread = "using-admin-session-worker-thread"
	FieldAdministrativeOperation       = "administrative-operation"
	FieldIntermediateClientRequest     = "intermediate-client-request"
	FieldOperationPurpose              = "operation-purpose"

	// Connection-level fields
	FieldSourceAddress          = "source-address"
	FieldSourcePort             = "source-port"
	FieldTargetAddress          = "target-address"
	FieldTargetPort             = "target-port"
	FieldProtocol               = "protocol"
	FieldClientConnectionPolicy = "client-connection-policy"
	FieldDisconnectReason       = "disconnect-reason"
	FieldDisconnectMessage      = "disconnect-message"
	FieldCipher                 = "cipher"
	FieldNegotiationProperties  = "negotiation-properties"
	FieldPeerCertificateChain   = "peer-certificate-chain"
	FieldAutoAuthenticatedAs    = "auto-authenticated-as"

	// Certificate object fields
	FieldCertSubjectDN          = "subject-dn"
	FieldCertIssuerDN           = "issuer-dn"
	FieldCertType               = "certificate-type"
	FieldCertNotBefore          = "not-before"
	FieldCertNotAfter           = "not-after"
	FieldCertSerialNumber       = "serial-number"
	FieldCertSignatureAlgorithm = "signature-algorithm"

	// Entry rebalancing fields
	FieldRebalancingOperationID = "rebalancing-operation-id"
	FieldSubtreeBaseDN          = "subtree-base-dn"
	FieldSourceBackendSet       = "source-backend-set"
	FieldTargetBackendSet       = "target-backend-set"
	FieldSourceServer           = "source-server"
	FieldTargetServer           = "target-server"
	FieldEndpointAddress        = "address"
	FieldEndpointPort           = "port"
	FieldErrorMessage           = "error-message"
	FieldAdminActionRequired    = "admin-action-required"
	FieldAdminActionMessage     = "admin-action-message"

	// Operation request fields
	FieldDN                  = "dn"
	FieldIDToAbandon         = "message-id-to-abandon"
	FieldAttributes          = "attributes"
	FieldProtocolVersion     = "protocol-version"
	FieldAuthenticationType  = "authentication-type"
	FieldSASLMechanism       = "sasl-mechanism"
	FieldAttributeType       = "attribute-type"
	FieldRequestOID          = "request-oid"
	FieldNewRDN              = "new-rdn"
	FieldDeleteOldRDN        = "delete-old-rdn"
	FieldNewSuperiorDN       = "new-superior-dn"
	FieldBaseDN              = "base-dn"
	FieldScope               = "scope"
	FieldFilter              = "filter"
	FieldSizeLimit           = "size-limit"
	FieldTimeLimitSeconds    = "time-limit-seconds"
	FieldDerefPolicy         = "deref-policy"
	FieldTypesOnly           = "types-only"
	FieldRequestedAttributes = "requested-attributes"

	// Forward fields; a forwarded operation's port reuses FieldTargetPort
	FieldTargetHost     = "target-host"
	FieldTargetProtocol = "target-protocol"

	// Operation result fields
	FieldResultCode                     = "result-code"
	FieldResultCodeName                 = "result-code-name"
	FieldDiagnosticMessage              = "diagnostic-message"
	FieldMatchedDN                      = "matched-dn"
	FieldReferralURLs                   = "referral-urls"
	FieldServersAccessed                = "servers-accessed"
	FieldUncachedDataAccessed           = "uncached-data-accessed"
	FieldWorkQueueWaitTimeMillis        = "work-queue-wait-time-millis"
	FieldProcessingTimeMillis           = "processing-time-millis"
	FieldIntermediateResponsesReturned  = "intermediate-responses-returned"
	FieldResponseControlOIDs            = "response-control-oids"
	FieldUsedPrivileges                 = "used-privileges"
	FieldPreAuthorizationUsedPrivileges = "pre-authorization-used-privileges"
	FieldMissingPrivileges              = "missing-privileges"
	FieldAlternateAuthorizationDN       = "alternate-authorization-dn"
	FieldLocalAssuranceLevel            = "local-assurance-level"
	FieldRemoteAssuranceLevel           = "remote-assurance-level"
	FieldAssuranceTimeoutMillis         = "assurance-timeout-millis"
	FieldResponseDelayedByAssurance     = "response-delayed-by-assurance"
	FieldIndexesNearEntryLimit          = "indexes-near-entry-limit"
	FieldIndexesExceedingEntryLimit     = "indexes-exceeding-entry-limit"
	FieldReplicationChangeID            = "replication-change-id"
	FieldIntermediateClientResponse     = "intermediate-client-response"

	// Bind result fields
	FieldAuthenticationDN             = "authentication-dn"
	FieldAuthorizationDN              = "authorization-dn"
	FieldAuthenticationFailureID      = "authentication-failure-id"
	FieldAuthenticationFailureName    = "authentication-failure-name"
	FieldAuthenticationFailureMessage = "authentication-failure-message"
	FieldRetiredPasswordUsed          = "retired-password-used"

	// Extended result fields
	FieldResponseOID = "response-oid"

	// Search result fields
	FieldEntriesReturned = "entries-returned"
	FieldUnindexed       = "unindexed"

	// Assurance completion fields
	FieldLocalAssuranceSatisfied  = "local-assurance-satisfied"
	FieldRemoteAssuranceSatisfied = "remote-assurance-satisfied"
	FieldServerResults            = "server-results"
	FieldReplicationServerID      = "replication-server-id"
	FieldReplicaID                = "replica-id"

	// Search entry, reference and intermediate response fields
	FieldAttributesReturned = "attributes-returned"
	FieldOID                = "oid"
	FieldResponseName       = "response-name"
	FieldValue              = "value"

	// Intermediate client request control fields
	FieldDownstreamRequest       = "downstream-request"
	FieldDownstreamClientAddress = "downstream-client-address"
	FieldDownstreamClientSecure  = "downstream-client-secure"
	FieldClientIdentity          = "client-identity"
	FieldClientName              = "client-name"
	FieldClientSessionID         = "client-session-id"
	FieldClientRequestID         = "client-request-id"

	// Intermediate client response control fields
	FieldUpstreamResponse      = "upstream-response"
	FieldUpstreamServerAddress = "upstream-server-address"
	FieldUpstreamServerSecure  = "upstream-server-secure"
	FieldResponseSessionID     = "response-session-id"
	FieldResponseRequestID     = "response-request-id"

	// Operation purpose control fields
	FieldApplicationName    = "application-name"
	FieldApplicationVersion = "application-version"
	FieldCodeLocation       = "code-location"
	FieldRequestPurpose     = "request-purpose"

	// Security negotiation property object fields
	FieldPropertyName  = "name"
	FieldPropertyValue = "value"
)
