// Package sample models calibration data as an ordered series of
// (measured value, error) points and provides the two parsers that build
// one: free-text "<measured>,<error>" lines typed or pasted by the user,
// and Prometheus text expositions exported by DAQ systems.
//
// Parsing is strict: the first malformed line aborts the whole parse and
// any partially accumulated points are discarded, so a Sample handed to
// the calculators is either fully valid or does not exist.
package sample
