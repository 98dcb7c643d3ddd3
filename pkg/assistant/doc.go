// Package assistant implements the conversation core: it combines the legal
// knowledge base, the chat provider and the speech provider into the four
// operations the API exposes (text chat, voice chat, agent chat, plain TTS).
//
// Completed exchanges are recorded in the history store on a best-effort
// basis; a storage failure never fails the user's request.
package assistant
