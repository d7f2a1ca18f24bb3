package models

import "errors"

// ErrCampaignNameNotSpecified indicates the campaign name was blank
var ErrCampaignNameNotSpecified = errors.New("campaign name not specified")

// ErrSubjectNotSpecified indicates no subject was given and no template supplied one
var ErrSubjectNotSpecified = errors.New("email subject not specified")

// ErrBodyNotSpecified indicates no body was given and no template supplied one
var ErrBodyNotSpecified = errors.New("email body not specified")

// ErrNoTargetsSpecified indicates the target user list was empty
var ErrNoTargetsSpecified = errors.New("no target users specified")

// ErrTargetNotFound indicates a target user id does not resolve to a user
var ErrTargetNotFound = errors.New("one or more target users not found")

// ErrCampaignNotFound indicates the referenced campaign does not exist
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrUserNotFound indicates the referenced user does not exist
var ErrUserNotFound = errors.New("user not found")

// ErrTemplateNotFound indicates the referenced template does not exist
var ErrTemplateNotFound = errors.New("template not found")

// ErrTrackingIDsRequired indicates a tracking request without both ids
var ErrTrackingIDsRequired = errors.New("campaign id and user id are required")

// ErrModuleIDRequired indicates a module-completion request without a module id
var ErrModuleIDRequired = errors.New("module id is required")

// ErrCertificateNotEligible indicates too few completed modules for a certificate
var ErrCertificateNotEligible = errors.New("not enough completed modules for a certificate")
