package logo

// MimeFromExtension exposes mimeFromExtension to the external test package.
var MimeFromExtension = mimeFromExtension
