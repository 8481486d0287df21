package utils

// OTPCachePrefix namespaces OTP keys in Redis.
const OTPCachePrefix = "otp:"
