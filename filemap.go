// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import "strings"

// dbFileMap maps a normalized table name, the portion of the file name
// before the first dot lowercased, to the canonical definition file name
// as published in the upstream WoWDBDefs repository. The map is the sole
// authority on whether a table file is known.
var dbFileMap = map[string]string{
	"accountstorecategory":            "AccountStoreCategory.dbd",
	"accountstoreitem":                "AccountStoreItem.dbd",
	"achievement":                     "Achievement.dbd",
	"achievement_category":            "Achievement_Category.dbd",
	"achievement_criteria":            "Achievement_Criteria.dbd",
	"actionbargroup":                  "ActionBarGroup.dbd",
	"actionbargroupentry":             "ActionBarGroupEntry.dbd",
	"adventurejournal":                "AdventureJournal.dbd",
	"adventurejournalitem":            "AdventureJournalItem.dbd",
	"adventuremappoi":                 "AdventureMapPOI.dbd",
	"alliedrace":                      "AlliedRace.dbd",
	"alliedraceracialability":         "AlliedRaceRacialAbility.dbd",
	"altminimap":                      "AltMinimap.dbd",
	"altminimapfiledata":              "AltMinimapFiledata.dbd",
	"altminimapwmo":                   "AltMinimapWMO.dbd",
	"animacable":                      "AnimaCable.dbd",
	"animamaterial":                   "AnimaMaterial.dbd",
	"animationdata":                   "AnimationData.dbd",
	"animationnames":                  "AnimationNames.dbd",
	"animkit":                         "AnimKit.dbd",
	"animkitboneset":                  "AnimKitBoneSet.dbd",
	"animkitbonesetalias":             "AnimKitBoneSetAlias.dbd",
	"animkitconfig":                   "AnimKitConfig.dbd",
	"animkitconfigboneset":            "AnimKitConfigBoneSet.dbd",
	"animkitpriority":                 "AnimKitPriority.dbd",
	"animkitreplacement":              "AnimKitReplacement.dbd",
	"animkitsegment":                  "AnimKitSegment.dbd",
	"animreplacement":                 "AnimReplacement.dbd",
	"animreplacementset":              "AnimReplacementSet.dbd",
	"aoibox":                          "AoiBox.dbd",
	"areaassignment":                  "AreaAssignment.dbd",
	"areaconditionaldata":             "AreaConditionalData.dbd",
	"areagroup":                       "AreaGroup.dbd",
	"areagroupmember":                 "AreaGroupMember.dbd",
	"areamidiambiences":               "AreaMIDIAmbiences.dbd",
	"areapoi":                         "AreaPOI.dbd",
	"areapoisortedworldstate":         "AreaPOISortedWorldState.dbd",
	"areapoistate":                    "AreaPOIState.dbd",
	"areapoiuiwidgetset":              "AreaPOIUiWidgetSet.dbd",
	"areatable":                       "AreaTable.dbd",
	"areatrigger":                     "AreaTrigger.dbd",
	"areatriggeractionset":            "AreaTriggerActionSet.dbd",
	"areatriggerboundedplane":         "AreaTriggerBoundedPlane.dbd",
	"areatriggerbox":                  "AreaTriggerBox.dbd",
	"areatriggercreateproperties":     "AreaTriggerCreateProperties.dbd",
	"areatriggercylinder":             "AreaTriggerCylinder.dbd",
	"areatriggerdisk":                 "AreaTriggerDisk.dbd",
	"areatriggersphere":               "AreaTriggerSphere.dbd",
	"arenatrackeditem":                "ArenaTrackedItem.dbd",
	"armorlocation":                   "ArmorLocation.dbd",
	"artifact":                        "Artifact.dbd",
	"artifactappearance":              "ArtifactAppearance.dbd",
	"artifactappearanceset":           "ArtifactAppearanceSet.dbd",
	"artifactcategory":                "ArtifactCategory.dbd",
	"artifactitemtotransmog":          "ArtifactItemToTransmog.dbd",
	"artifactpower":                   "ArtifactPower.dbd",
	"artifactpowerlink":               "ArtifactPowerLink.dbd",
	"artifactpowerpicker":             "ArtifactPowerPicker.dbd",
	"artifactpowerrank":               "ArtifactPowerRank.dbd",
	"artifactquestxp":                 "ArtifactQuestXP.dbd",
	"artifacttier":                    "ArtifactTier.dbd",
	"artifactunlock":                  "ArtifactUnlock.dbd",
	"assistedcombat":                  "AssistedCombat.dbd",
	"animacylinder":                   "AnimaCylinder.dbd",
	"areafarclipoverride":             "AreaFarClipOverride.dbd",
	"arenaccitem":                     "ArenaCcItem.dbd",
	"assistedcombatrule":              "AssistedCombatRule.dbd",
	"azeritetierunlockset":            "AzeriteTierUnlockSet.dbd",
	"battlepetdisplayoverride":        "BattlePetDisplayOverride.dbd",
	"broadcasttextduration":           "BroadcastTextDuration.dbd",
	"cfg_realms":                      "Cfg_Realms.dbd",
	"charcomponenttexturesections":    "CharComponentTextureSections.dbd",
	"chrclassracesex":                 "ChrClassRaceSex.dbd",
	"chrcustomizationconversion":      "ChrCustomizationConversion.dbd",
	"chrproficiency":                  "ChrProficiency.dbd",
	"clientsettings":                  "ClientSettings.dbd",
	"communityicon":                   "CommunityIcon.dbd",
	"assistedcombatstep":              "AssistedCombatStep.dbd",
	"attackanimkits":                  "AttackAnimKits.dbd",
	"attackanimtypes":                 "AttackAnimTypes.dbd",
	"auctionhouse":                    "AuctionHouse.dbd",
	"auctionhousecategory":            "AuctionHouseCategory.dbd",
	"azeriteempowereditem":            "AzeriteEmpoweredItem.dbd",
	"azeriteessence":                  "AzeriteEssence.dbd",
	"azeriteessencepower":             "AzeriteEssencePower.dbd",
	"azeriteitem":                     "AzeriteItem.dbd",
	"azeriteitemmilestonepower":       "AzeriteItemMilestonePower.dbd",
	"azeriteknowledgemultiplier":      "AzeriteKnowledgeMultiplier.dbd",
	"azeritelevelinfo":                "AzeriteLevelInfo.dbd",
	"azeritepower":                    "AzeritePower.dbd",
	"azeritepowersetmember":           "AzeritePowerSetMember.dbd",
	"azeritetierunlock":               "AzeriteTierUnlock.dbd",
	"azeriteunlockmapping":            "AzeriteUnlockMapping.dbd",
	"bankbagslotprices":               "BankBagSlotPrices.dbd",
	"banktab":                         "BankTab.dbd",
	"bannedaddons":                    "BannedAddons.dbd",
	"barbershopstyle":                 "BarberShopStyle.dbd",
	"barrageeffect":                   "BarrageEffect.dbd",
	"battlemasterlist":                "BattlemasterList.dbd",
	"battlemasterlistxmap":            "BattlemasterListXMap.dbd",
	"battlepaycurrency":               "BattlepayCurrency.dbd",
	"battlepetability":                "BattlePetAbility.dbd",
	"battlepetabilityeffect":          "BattlePetAbilityEffect.dbd",
	"battlepetabilitystate":           "BattlePetAbilityState.dbd",
	"battlepetabilityturn":            "BattlePetAbilityTurn.dbd",
	"battlepetbreedquality":           "BattlePetBreedQuality.dbd",
	"battlepetbreedstate":             "BattlePetBreedState.dbd",
	"battlepeteffectproperties":       "BattlePetEffectProperties.dbd",
	"battlepetnpcteammember":          "BattlePetNPCTeamMember.dbd",
	"battlepetspecies":                "BattlePetSpecies.dbd",
	"battlepetspeciesstate":           "BattlePetSpeciesState.dbd",
	"battlepetspeciesxability":        "BattlePetSpeciesXAbility.dbd",
	"battlepetspeciesxcovenant":       "BattlePetSpeciesXCovenant.dbd",
	"battlepetstate":                  "BattlePetState.dbd",
	"battlepetvisual":                 "BattlePetVisual.dbd",
	"beameffect":                      "BeamEffect.dbd",
	"beckontrigger":                   "BeckonTrigger.dbd",
	"bonewindmodifiermodel":           "BoneWindModifierModel.dbd",
	"bonewindmodifiers":               "BoneWindModifiers.dbd",
	"bonusroll":                       "BonusRoll.dbd",
	"bounty":                          "Bounty.dbd",
	"bountyset":                       "BountySet.dbd",
	"broadcasttext":                   "BroadcastText.dbd",
	"broadcasttextsoundstate":         "BroadcastTextSoundState.dbd",
	"broadcasttextvostate":            "BroadcastTextVOState.dbd",
	"cameraeffect":                    "CameraEffect.dbd",
	"cameraeffectentry":               "CameraEffectEntry.dbd",
	"cameramode":                      "CameraMode.dbd",
	"camerashakes":                    "CameraShakes.dbd",
	"campaign":                        "Campaign.dbd",
	"campaignxcondition":              "CampaignXCondition.dbd",
	"campaignxquestline":              "CampaignXQuestLine.dbd",
	"castableraidbuffs":               "CastableRaidBuffs.dbd",
	"celestialbody":                   "CelestialBody.dbd",
	"cfg_categories":                  "Cfg_Categories.dbd",
	"cfg_configs":                     "Cfg_Configs.dbd",
	"cfg_gamerules":                   "Cfg_GameRules.dbd",
	"cfg_languages":                   "Cfg_Languages.dbd",
	"cfg_regions":                     "Cfg_Regions.dbd",
	"cfg_timeeventregiongroup":        "Cfg_TimeEventRegionGroup.dbd",
	"challengemodeitembonusoverride":  "ChallengeModeItemBonusOverride.dbd",
	"challengemodereward":             "ChallengeModeReward.dbd",
	"challengemodexreward":            "ChallengeModeXReward.dbd",
	"charactercreatecameras":          "CharacterCreateCameras.dbd",
	"characterfaceboneset":            "CharacterFaceBoneSet.dbd",
	"characterfacialhairstyles":       "CharacterFacialHairStyles.dbd",
	"characterloadout":                "CharacterLoadout.dbd",
	"characterloadoutitem":            "CharacterLoadoutItem.dbd",
	"characterloadoutpet":             "CharacterLoadoutPet.dbd",
	"characterserviceinfo":            "CharacterServiceInfo.dbd",
	"charbaseinfo":                    "CharBaseInfo.dbd",
	"charbasesection":                 "CharBaseSection.dbd",
	"charcomponenttexturelayouts":     "CharComponentTextureLayouts.dbd",
	"charhairgeosets":                 "CharHairGeosets.dbd",
	"charhairtextures":                "CharHairTextures.dbd",
	"charsectioncondition":            "CharSectionCondition.dbd",
	"charsections":                    "CharSections.dbd",
	"charshipment":                    "CharShipment.dbd",
	"charshipmentcontainer":           "CharShipmentContainer.dbd",
	"charstartkit":                    "CharStartKit.dbd",
	"charstartoutfit":                 "CharStartOutfit.dbd",
	"chartexturevariationsv2":         "CharTextureVariationsV2.dbd",
	"chartitles":                      "CharTitles.dbd",
	"charvariations":                  "CharVariations.dbd",
	"chatchannels":                    "ChatChannels.dbd",
	"chatprofanity":                   "ChatProfanity.dbd",
	"chrclasses":                      "ChrClasses.dbd",
	"chrclassesxpowertypes":           "ChrClassesXPowerTypes.dbd",
	"chrclasstitle":                   "ChrClassTitle.dbd",
	"chrclassuichrmodelinfo":          "ChrClassUIChrModelInfo.dbd",
	"chrclassuidisplay":               "ChrClassUIDisplay.dbd",
	"chrclassvillain":                 "ChrClassVillain.dbd",
	"chrcreateclassanimtarget":        "ChrCreateClassAnimTarget.dbd",
	"chrcreateclassanimtargetinfo":    "ChrCreateClassAnimTargetInfo.dbd",
	"chrcustclientchoiceconversion":   "ChrCustClientChoiceConversion.dbd",
	"chrcustgeocomponentlink":         "ChrCustGeoComponentLink.dbd",
	"chrcustitemgeomodify":            "ChrCustItemGeoModify.dbd",
	"chrcustomization":                "ChrCustomization.dbd",
	"chrcustomizationboneset":         "ChrCustomizationBoneSet.dbd",
	"chrcustomizationcategory":        "ChrCustomizationCategory.dbd",
	"chrcustomizationchoice":          "ChrCustomizationChoice.dbd",
	"chrcustomizationcondmodel":       "ChrCustomizationCondModel.dbd",
	"chrcustomizationdisplayinfo":     "ChrCustomizationDisplayInfo.dbd",
	"chrcustomizationelement":         "ChrCustomizationElement.dbd",
	"chrcustomizationgeoset":          "ChrCustomizationGeoset.dbd",
	"chrcustomizationglyphpet":        "ChrCustomizationGlyphPet.dbd",
	"chrcustomizationmaterial":        "ChrCustomizationMaterial.dbd",
	"chrcustomizationoption":          "ChrCustomizationOption.dbd",
	"chrcustomizationreq":             "ChrCustomizationReq.dbd",
	"chrcustomizationreqchoice":       "ChrCustomizationReqChoice.dbd",
	"chrcustomizationskinnedmodel":    "ChrCustomizationSkinnedModel.dbd",
	"chrcustomizationvisreq":          "ChrCustomizationVisReq.dbd",
	"chrcustomizationvoice":           "ChrCustomizationVoice.dbd",
	"chrmodel":                        "ChrModel.dbd",
	"chrmodelmaterial":                "ChrModelMaterial.dbd",
	"chrmodeltexturelayer":            "ChrModelTextureLayer.dbd",
	"chrmodeltexturetarget":           "ChrModelTextureTarget.dbd",
	"chrraceracialability":            "ChrRaceRacialAbility.dbd",
	"chrraces":                        "ChrRaces.dbd",
	"chrracescreatescreenicon":        "ChrRacesCreateScreenIcon.dbd",
	"chrracesping":                    "ChrRacesPing.dbd",
	"chrracexchrmodel":                "ChrRaceXChrModel.dbd",
	"chrselectbackgroundcdi":          "ChrSelectBackgroundCDI.dbd",
	"chrspecialization":               "ChrSpecialization.dbd",
	"chrupgradebucket":                "ChrUpgradeBucket.dbd",
	"chrupgradebucketspell":           "ChrUpgradeBucketSpell.dbd",
	"chrupgradetier":                  "ChrUpgradeTier.dbd",
	"cinematic":                       "Cinematic.dbd",
	"cinematiccamera":                 "CinematicCamera.dbd",
	"cinematicsequences":              "CinematicSequences.dbd",
	"cinematicsubtitle":               "CinematicSubtitle.dbd",
	"clientsceneeffect":               "ClientSceneEffect.dbd",
	"cloakdampening":                  "CloakDampening.dbd",
	"cloneeffect":                     "CloneEffect.dbd",
	"collectablesourceencounter":      "CollectableSourceEncounter.dbd",
	"collectablesourceencountersparse": "CollectableSourceEncounterSparse.dbd",
	"collectablesourceinfo":           "CollectableSourceInfo.dbd",
	"collectablesourcequest":          "CollectableSourceQuest.dbd",
	"collectablesourcequestsparse":    "CollectableSourceQuestSparse.dbd",
	"collectablesourcevendor":         "CollectableSourceVendor.dbd",
	"collectablesourcevendorsparse":   "CollectableSourceVendorSparse.dbd",
	"colorbanding":                    "ColorBanding.dbd",
	"combatcondition":                 "CombatCondition.dbd",
	"commentatorindirectspell":        "CommentatorIndirectSpell.dbd",
	"commentatorstartlocation":        "CommentatorStartLocation.dbd",
	"commentatortrackedcooldown":      "CommentatorTrackedCooldown.dbd",
	"componentmodelfiledata":          "ComponentModelFileData.dbd",
	"componenttexturefiledata":        "ComponentTextureFileData.dbd",
	"conditionalchrmodel":             "ConditionalChrModel.dbd",
	"conditionalcontenttuning":        "ConditionalContentTuning.dbd",
	"conditionalcreaturemodeldata":    "ConditionalCreatureModelData.dbd",
	"conditionalitemappearance":       "ConditionalItemAppearance.dbd",
	"configurationwarning":            "ConfigurationWarning.dbd",
	"consolescripts":                  "ConsoleScripts.dbd",
	"contentpush":                     "ContentPush.dbd",
	"contentrestrictionrule":          "ContentRestrictionRule.dbd",
	"contentrestrictionruleset":       "ContentRestrictionRuleSet.dbd",
	"contenttuning":                   "ContentTuning.dbd",
	"contenttuningdescription":        "ContentTuningDescription.dbd",
	"contenttuningxdifficulty":        "ContentTuningXDifficulty.dbd",
	"contenttuningxexpected":          "ContentTuningXExpected.dbd",
	"contenttuningxlabel":             "ContentTuningXLabel.dbd",
	"contribution":                    "Contribution.dbd",
	"contributionstyle":               "ContributionStyle.dbd",
	"contributionstylecontainer":      "ContributionStyleContainer.dbd",
	"conversationline":                "ConversationLine.dbd",
	"cooldownset":                     "CooldownSet.dbd",
	"cooldownsetlinkedspell":          "CooldownSetLinkedSpell.dbd",
	"cooldownsetspell":                "CooldownSetSpell.dbd",
	"corruptioneffects":               "CorruptionEffects.dbd",
	"covenant":                        "Covenant.dbd",
	"craftingdata":                    "CraftingData.dbd",
	"craftingdataenchantquality":      "CraftingDataEnchantQuality.dbd",
	"craftingdataitemquality":         "CraftingDataItemQuality.dbd",
	"craftingdifficulty":              "CraftingDifficulty.dbd",
	"craftingdifficultyquality":       "CraftingDifficultyQuality.dbd",
	"craftingitemquality":             "CraftingItemQuality.dbd",
	"craftingorder":                   "CraftingOrder.dbd",
	"craftingorderhouse":              "CraftingOrderHouse.dbd",
	"craftingorderxlabel":             "CraftingOrderXLabel.dbd",
	"craftingquality":                 "CraftingQuality.dbd",
	"craftingreagenteffect":           "CraftingReagentEffect.dbd",
	"craftingreagentquality":          "CraftingReagentQuality.dbd",
	"craftingreagentrequirement":      "CraftingReagentRequirement.dbd",
	"creature":                        "Creature.dbd",
	"creaturedifficulty":              "CreatureDifficulty.dbd",
	"creaturedifficultytreasure":      "CreatureDifficultyTreasure.dbd",
	"creaturedisplayinfo":             "CreatureDisplayInfo.dbd",
	"creaturedisplayinfocond":         "CreatureDisplayInfoCond.dbd",
	"creaturedisplayinfocondxchoice":  "CreatureDisplayInfoCondXChoice.dbd",
	"creaturedisplayinfoevt":          "CreatureDisplayInfoEvt.dbd",
	"creaturedisplayinfogeosetdata":   "CreatureDisplayInfoGeosetData.dbd",
	"creaturedisplayinfooption":       "CreatureDisplayInfoOption.dbd",
	"creaturedisplayinfotrn":          "CreatureDisplayInfoTrn.dbd",
	"creaturedisplayxuimodelscene":    "CreatureDisplayXUIModelScene.dbd",
	"creaturedispxuicamera":           "CreatureDispXUiCamera.dbd",
	"creaturefamily":                  "CreatureFamily.dbd",
	"creaturefamilyxuimodelscene":     "CreatureFamilyXUIModelScene.dbd",
	"creatureimmunities":              "CreatureImmunities.dbd",
	"creaturelabel":                   "CreatureLabel.dbd",
	"creaturemodeldata":               "CreatureModelData.dbd",
	"creaturemovementinfo":            "CreatureMovementInfo.dbd",
	"creaturesounddata":               "CreatureSoundData.dbd",
	"creaturesoundfidget":             "CreatureSoundFidget.dbd",
	"creaturespelldata":               "CreatureSpellData.dbd",
	"creaturetype":                    "CreatureType.dbd",
	"creaturexdisplayinfo":            "CreatureXDisplayInfo.dbd",
	"creaturexuiwidgetset":            "CreatureXUiWidgetSet.dbd",
	"criteria":                        "Criteria.dbd",
	"criteriatree":                    "CriteriaTree.dbd",
	"criteriatreexeffect":             "CriteriaTreeXEffect.dbd",
	"currencycategory":                "CurrencyCategory.dbd",
	"currencycontainer":               "CurrencyContainer.dbd",
	"currencysource":                  "CurrencySource.dbd",
	"currencytypes":                   "CurrencyTypes.dbd",
	"curve":                           "Curve.dbd",
	"curvepoint":                      "CurvePoint.dbd",
	"dancemoves":                      "DanceMoves.dbd",
	"deaththudlookups":                "DeathThudLookups.dbd",
	"decalproperties":                 "DecalProperties.dbd",
	"declinedword":                    "DeclinedWord.dbd",
	"declinedwordcases":               "DeclinedWordCases.dbd",
	"delvesseasonxspell":              "DelvesSeasonXSpell.dbd",
	"destructiblemodeldata":           "DestructibleModelData.dbd",
	"deviceblacklist":                 "DeviceBlacklist.dbd",
	"devicedefaultsettings":           "DeviceDefaultSettings.dbd",
	"difficulty":                      "Difficulty.dbd",
	"displayseason":                   "DisplaySeason.dbd",
	"dissolveeffect":                  "DissolveEffect.dbd",
	"drivecapability":                 "DriveCapability.dbd",
	"drivecapabilitytier":             "DriveCapabilityTier.dbd",
	"driverblacklist":                 "DriverBlacklist.dbd",
	"dungeonencounter":                "DungeonEncounter.dbd",
	"dungeonmap":                      "DungeonMap.dbd",
	"dungeonmapchunk":                 "DungeonMapChunk.dbd",
	"durabilitycosts":                 "DurabilityCosts.dbd",
	"durabilityquality":               "DurabilityQuality.dbd",
	"edgegloweffect":                  "EdgeGlowEffect.dbd",
	"emotes":                          "Emotes.dbd",
	"emotestext":                      "EmotesText.dbd",
	"emotestextdata":                  "EmotesTextData.dbd",
	"emotestextsound":                 "EmotesTextSound.dbd",
	"enumeratedstring":                "EnumeratedString.dbd",
	"environmentaldamage":             "EnvironmentalDamage.dbd",
	"exhaustion":                      "Exhaustion.dbd",
	"expectedstat":                    "ExpectedStat.dbd",
	"expectedstatmod":                 "ExpectedStatMod.dbd",
	"extraabilityinfo":                "ExtraAbilityInfo.dbd",
	"faction":                         "Faction.dbd",
	"factiongroup":                    "FactionGroup.dbd",
	"factiontemplate":                 "FactionTemplate.dbd",
	"filedata":                        "FileData.dbd",
	"filedatacomplete":                "FileDataComplete.dbd",
	"filepaths":                       "FilePaths.dbd",
	"flightcapabilityxglideevent":     "FlightCapabilityXGlideEvent.dbd",
	"footprinttextures":               "FootprintTextures.dbd",
	"footstepterrainlookup":           "FootstepTerrainLookup.dbd",
	"friendshiprepreaction":           "FriendshipRepReaction.dbd",
	"friendshipreputation":            "FriendshipReputation.dbd",
	"fullscreeneffect":                "FullScreenEffect.dbd",
	"gameclockdebug":                  "GameClockDebug.dbd",
	"gamemode":                        "GameMode.dbd",
	"gameobjectanimgroupmember":       "GameObjectAnimGroupMember.dbd",
	"gameobjectartkit":                "GameObjectArtKit.dbd",
	"gameobjectdiffanimmap":           "GameObjectDiffAnimMap.dbd",
	"gameobjectdisplaycondition":      "GameObjectDisplayCondition.dbd",
	"gameobjectdisplayinfo":           "GameObjectDisplayInfo.dbd",
	"gameobjectdisplayinfoxsoundkit":  "GameObjectDisplayInfoXSoundKit.dbd",
	"gameobjectlabel":                 "GameObjectLabel.dbd",
	"gameobjectsclient":               "GameObjectsClient.dbd",
	"gameparameter":                   "GameParameter.dbd",
	"gametables":                      "GameTables.dbd",
	"gametips":                        "GameTips.dbd",
	"garrability":                     "GarrAbility.dbd",
	"garrabilitycategory":             "GarrAbilityCategory.dbd",
	"garrabilityeffect":               "GarrAbilityEffect.dbd",
	"garrautocombatant":               "GarrAutoCombatant.dbd",
	"garrautospell":                   "GarrAutoSpell.dbd",
	"garrautospelleffect":             "GarrAutoSpellEffect.dbd",
	"garrbuilding":                    "GarrBuilding.dbd",
	"garrbuildingdoodadset":           "GarrBuildingDoodadSet.dbd",
	"garrbuildingplotinst":            "GarrBuildingPlotInst.dbd",
	"garrclassspec":                   "GarrClassSpec.dbd",
	"garrclassspecplayercond":         "GarrClassSpecPlayerCond.dbd",
	"garrencountersetxencounter":      "GarrEncounterSetXEncounter.dbd",
	"garrencounterxmechanic":          "GarrEncounterXMechanic.dbd",
	"garrfamilyname":                  "GarrFamilyName.dbd",
	"garrfollitemset":                 "GarrFollItemSet.dbd",
	"garrfollitemsetmember":           "GarrFollItemSetMember.dbd",
	"garrfollower":                    "GarrFollower.dbd",
	"garrfollowerlevelxp":             "GarrFollowerLevelXP.dbd",
	"garrfollowerquality":             "GarrFollowerQuality.dbd",
	"garrfollowersetxfollower":        "GarrFollowerSetXFollower.dbd",
	"garrfollowertype":                "GarrFollowerType.dbd",
	"garrfolloweruicreature":          "GarrFollowerUICreature.dbd",
	"garrfollowerxability":            "GarrFollowerXAbility.dbd",
	"garrfollsupportspell":            "GarrFollSupportSpell.dbd",
	"garrgivenname":                   "GarrGivenName.dbd",
	"garritemlevelupgradedata":        "GarrItemLevelUpgradeData.dbd",
	"garrmechanicsetxmechanic":        "GarrMechanicSetXMechanic.dbd",
	"garrmechanictype":                "GarrMechanicType.dbd",
	"garrmission":                     "GarrMission.dbd",
	"garrmissionreward":               "GarrMissionReward.dbd",
	"garrmissionset":                  "GarrMissionSet.dbd",
	"garrmissiontexture":              "GarrMissionTexture.dbd",
	"garrmissiontype":                 "GarrMissionType.dbd",
	"garrmissionxencounter":           "GarrMissionXEncounter.dbd",
	"garrmissionxfollower":            "GarrMissionXFollower.dbd",
	"garrmssnbonusability":            "GarrMssnBonusAbility.dbd",
	"garrplot":                        "GarrPlot.dbd",
	"garrplotbuilding":                "GarrPlotBuilding.dbd",
	"garrplotinstance":                "GarrPlotInstance.dbd",
	"garrplotuicategory":              "GarrPlotUICategory.dbd",
	"garrsitelevel":                   "GarrSiteLevel.dbd",
	"garrspecialization":              "GarrSpecialization.dbd",
	"garrstring":                      "GarrString.dbd",
	"garrtalent":                      "GarrTalent.dbd",
	"garrtalentcost":                  "GarrTalentCost.dbd",
	"garrtalentmappoi":                "GarrTalentMapPOI.dbd",
	"garrtalentrank":                  "GarrTalentRank.dbd",
	"garrtalentrankgroupentry":        "GarrTalentRankGroupEntry.dbd",
	"garrtalentrankgroupresearchmod":  "GarrTalentRankGroupResearchMod.dbd",
	"garrtalentresearch":              "GarrTalentResearch.dbd",
	"garrtalentsocketproperties":      "GarrTalentSocketProperties.dbd",
	"garrtalenttree":                  "GarrTalentTree.dbd",
	"garrtaltreexgarrtalresearch":     "GarrTalTreeXGarrTalResearch.dbd",
	"garrtype":                        "GarrType.dbd",
	"garruianimclassinfo":             "GarrUiAnimClassInfo.dbd",
	"garruianimraceinfo":              "GarrUiAnimRaceInfo.dbd",
	"glideevent":                      "GlideEvent.dbd",
	"glideeventblendtimes":            "GlideEventBlendTimes.dbd",
	"globalcolor":                     "GlobalColor.dbd",
	"globalcurve":                     "GlobalCurve.dbd",
	"globalgamecontenttuning":         "GlobalGameContentTuning.dbd",
	"globalplayercondition":           "GlobalPlayerCondition.dbd",
	"globalplayerconditionset":        "GlobalPlayerConditionSet.dbd",
	"globalstrings":                   "GlobalStrings.dbd",
	"globaltable_playercondition":     "GlobalTable_PlayerCondition.dbd",
	"gluescreenemote":                 "GlueScreenEmote.dbd",
	"glyphbindablespell":              "GlyphBindableSpell.dbd",
	"glyphexclusivecategory":          "GlyphExclusiveCategory.dbd",
	"glyphproperties":                 "GlyphProperties.dbd",
	"glyphrequiredspec":               "GlyphRequiredSpec.dbd",
	"glyphslot":                       "GlyphSlot.dbd",
	"gmsurveycurrentsurvey":           "GMSurveyCurrentSurvey.dbd",
	"gmsurveyquestions":               "GMSurveyQuestions.dbd",
	"gmsurveysurveys":                 "GMSurveySurveys.dbd",
	"gmticketcategory":                "GMTicketCategory.dbd",
	"gossipnpcoption":                 "GossipNPCOption.dbd",
	"gossipnpcoptiondisplayinfo":      "GossipNPCOptionDisplayInfo.dbd",
	"gossipoptionxuiwidgetset":        "GossipOptionXUIWidgetSet.dbd",
	"gossipuidisplayinfocondition":    "GossipUIDisplayInfoCondition.dbd",
	"gossipxgarrtalenttrees":          "GossipXGarrTalentTrees.dbd",
	"gossipxuidisplayinfo":            "GossipXUIDisplayInfo.dbd",
	"gradienteffect":                  "GradientEffect.dbd",
	"groundeffectdoodad":              "GroundEffectDoodad.dbd",
	"groundeffecttexture":             "GroundEffectTexture.dbd",
	"groupfinderactivity":             "GroupFinderActivity.dbd",
	"groupfinderactivitygrp":          "GroupFinderActivityGrp.dbd",
	"groupfindercategory":             "GroupFinderCategory.dbd",
	"gtarmormitigationbylvl":          "gtArmorMitigationByLvl.dbd",
	"gtbarbershopcostbase":            "gtBarberShopCostBase.dbd",
	"gtbattlepettypedamagemod":        "gtBattlePetTypeDamageMod.dbd",
	"gtbattlepetxp":                   "gtBattlePetXP.dbd",
	"gtchancetomeleecrit":             "gtChanceToMeleeCrit.dbd",
	"gtchancetomeleecritbase":         "gtChanceToMeleeCritBase.dbd",
	"gtchancetospellcrit":             "gtChanceToSpellCrit.dbd",
	"gtchancetospellcritbase":         "gtChanceToSpellCritBase.dbd",
	"gtcombatratings":                 "gtCombatRatings.dbd",
	"gtitemsocketcostperlevel":        "gtItemSocketCostPerLevel.dbd",
	"gtmasterymultipliers":            "gtMasteryMultipliers.dbd",
	"gtnpcmanacostscaler":             "gtNPCManaCostScaler.dbd",
	"gtoctbasehpbyclass":              "gtOCTBaseHPByClass.dbd",
	"gtoctbasempbyclass":              "gtOCTBaseMPByClass.dbd",
	"gtoctclasscombatratingscalar":    "gtOCTClassCombatRatingScalar.dbd",
	"gtocthpperstamina":               "gtOCTHpPerStamina.dbd",
	"gtoctlevelexperience":            "gtOCTLevelExperience.dbd",
	"gtoctregenhp":                    "gtOCTRegenHP.dbd",
	"gtoctregenmp":                    "gtOCTRegenMP.dbd",
	"gtregenhpperspt":                 "gtRegenHPPerSpt.dbd",
	"gtregenmpperspt":                 "gtRegenMPPerSpt.dbd",
	"gtresiliencedr":                  "gtResilienceDR.dbd",
	"gtspellscaling":                  "gtSpellScaling.dbd",
	"holidaynames":                    "HolidayNames.dbd",
	"holidays":                        "Holidays.dbd",
	"holidayxtimeevent":               "HolidayXTimeEvent.dbd",
	"hotfix":                          "Hotfix.dbd",
	"hotfixes":                        "Hotfixes.dbd",
	"housedecor":                      "HouseDecor.dbd",
	"importpricearmor":                "ImportPriceArmor.dbd",
	"importpricequality":              "ImportPriceQuality.dbd",
	"importpriceshield":               "ImportPriceShield.dbd",
	"importpriceweapon":               "ImportPriceWeapon.dbd",
	"invasionclientdata":              "InvasionClientData.dbd",
	"item-sparse":                     "Item-sparse.dbd",
	"item":                            "Item.dbd",
	"itemappearance":                  "ItemAppearance.dbd",
	"itemappearancexuicamera":         "ItemAppearanceXUiCamera.dbd",
	"itemarmorquality":                "ItemArmorQuality.dbd",
	"itemarmortotal":                  "ItemArmorTotal.dbd",
	"itembagfamily":                   "ItemBagFamily.dbd",
	"itembonus":                       "ItemBonus.dbd",
	"itembonuslist":                   "ItemBonusList.dbd",
	"itembonuslistgroup":              "ItemBonusListGroup.dbd",
	"itembonuslistgroupentry":         "ItemBonusListGroupEntry.dbd",
	"itembonuslistleveldelta":         "ItemBonusListLevelDelta.dbd",
	"itembonuslistwarforgeleveldelta": "ItemBonusListWarforgeLevelDelta.dbd",
	"itembonusseason":                 "ItemBonusSeason.dbd",
	"itembonusseasonbonuslistgroup":   "ItemBonusSeasonBonusListGroup.dbd",
	"itembonusseasonupgradecost":      "ItemBonusSeasonUpgradeCost.dbd",
	"itembonussequencespell":          "ItemBonusSequenceSpell.dbd",
	"itembonustree":                   "ItemBonusTree.dbd",
	"itembonustreegroupentry":         "ItemBonusTreeGroupEntry.dbd",
	"itembonustreenode":               "ItemBonusTreeNode.dbd",
	"craftingitem":                    "CraftingItem.dbd",
	"creaturedisplayinfoextra":        "CreatureDisplayInfoExtra.dbd",
	"creaturexcontribution":           "CreatureXContribution.dbd",
	"delvesseason":                    "DelvesSeason.dbd",
	"emoteanims":                      "EmoteAnims.dbd",
	"flightcapability":                "FlightCapability.dbd",
	"gameobjects":                     "GameObjects.dbd",
	"garrencounter":                   "GarrEncounter.dbd",
	"garrmechanic":                    "GarrMechanic.dbd",
	"garrsitelevelplotinst":           "GarrSiteLevelPlotInst.dbd",
	"gemproperties":                   "GemProperties.dbd",
	"gmsurveyanswers":                 "GMSurveyAnswers.dbd",
	"groupfinderactivityxpvpbracket":  "GroupFinderActivityXPvpBracket.dbd",
	"guildcolorbackground":            "GuildColorBackground.dbd",
	"holidaydescriptions":             "HolidayDescriptions.dbd",
	"itemclass":                       "ItemClass.dbd",
	"itemcondextcosts":                "ItemCondExtCosts.dbd",
	"itemcondition":                   "ItemCondition.dbd",
	"itemcontextpickerentry":          "ItemContextPickerEntry.dbd",
	"itemconversion":                  "ItemConversion.dbd",
	"itemconversionentry":             "ItemConversionEntry.dbd",
	"itemcreationcontext":             "ItemCreationContext.dbd",
	"itemcreationcontextgroup":        "ItemCreationContextGroup.dbd",
	"itemcurrencycost":                "ItemCurrencyCost.dbd",
	"itemcurrencyvalue":               "ItemCurrencyValue.dbd",
	"itemdamageammo":                  "ItemDamageAmmo.dbd",
	"itemdamageonehand":               "ItemDamageOneHand.dbd",
	"itemdamageonehandcaster":         "ItemDamageOneHandCaster.dbd",
	"itemdamageranged":                "ItemDamageRanged.dbd",
	"itemdamagethrown":                "ItemDamageThrown.dbd",
	"itemdamagetwohandcaster":         "ItemDamageTwoHandCaster.dbd",
	"itemdamagewand":                  "ItemDamageWand.dbd",
	"itemdisenchantloot":              "ItemDisenchantLoot.dbd",
	"itemdisplayinfo":                 "ItemDisplayInfo.dbd",
	"itemdisplayinfomaterialres":      "ItemDisplayInfoMaterialRes.dbd",
	"itemdisplayinfomodelmatres":      "ItemDisplayInfoModelMatRes.dbd",
	"itemdisplayxuicamera":            "ItemDisplayXUiCamera.dbd",
	"itemeffect":                      "ItemEffect.dbd",
	"itemextendedcost":                "ItemExtendedCost.dbd",
	"itemfallbackvisual":              "ItemFallbackVisual.dbd",
	"itemfixup":                       "ItemFixup.dbd",
	"itemfixupaction":                 "ItemFixupAction.dbd",
	"itemgroupilvlscalingentry":       "ItemGroupIlvlScalingEntry.dbd",
	"itemgroupsounds":                 "ItemGroupSounds.dbd",
	"itemlevelselector":               "ItemLevelSelector.dbd",
	"itemlevelselectorqualityset":     "ItemLevelSelectorQualitySet.dbd",
	"itemlevelwatermark":              "ItemLevelWatermark.dbd",
	"itemlimitcategory":               "ItemLimitCategory.dbd",
	"itemlimitcategorycondition":      "ItemLimitCategoryCondition.dbd",
	"itemlogicalcost":                 "ItemLogicalCost.dbd",
	"itemlogicalcostgroup":            "ItemLogicalCostGroup.dbd",
	"itemmodifiedappearance":          "ItemModifiedAppearance.dbd",
	"itemmodifiedappearanceextra":     "ItemModifiedAppearanceExtra.dbd",
	"itemnamedescription":             "ItemNameDescription.dbd",
	"itemnameslotoverride":            "ItemNameSlotOverride.dbd",
	"itemoffsetcurve":                 "ItemOffsetCurve.dbd",
	"itempetfood":                     "ItemPetFood.dbd",
	"itempricebase":                   "ItemPriceBase.dbd",
	"itempurchasegroup":               "ItemPurchaseGroup.dbd",
	"itemrandomproperties":            "ItemRandomProperties.dbd",
	"itemrandomsuffix":                "ItemRandomSuffix.dbd",
	"itemrecraft":                     "ItemRecraft.dbd",
	"itemreforge":                     "ItemReforge.dbd",
	"itemsalvage":                     "ItemSalvage.dbd",
	"itemsalvageloot":                 "ItemSalvageLoot.dbd",
	"itemscalingconfig":               "ItemScalingConfig.dbd",
	"itemsearchname":                  "ItemSearchName.dbd",
	"itemset":                         "ItemSet.dbd",
	"itemsetspell":                    "ItemSetSpell.dbd",
	"itemsparse":                      "ItemSparse.dbd",
	"itemspec":                        "ItemSpec.dbd",
	"itemspecoverride":                "ItemSpecOverride.dbd",
	"itemsquishera":                   "ItemSquishEra.dbd",
	"itemsubclass":                    "ItemSubClass.dbd",
	"itemsubclassmask":                "ItemSubClassMask.dbd",
	"itemtobattlepet":                 "ItemToBattlePet.dbd",
	"itemtomountspell":                "ItemToMountSpell.dbd",
	"itemupgradepath":                 "ItemUpgradePath.dbd",
	"itemvisualeffects":               "ItemVisualEffects.dbd",
	"itemvisuals":                     "ItemVisuals.dbd",
	"itemvisualsxeffect":              "ItemVisualsXEffect.dbd",
	"itemxbonustree":                  "ItemXBonusTree.dbd",
	"itemxitemeffect":                 "ItemXItemEffect.dbd",
	"itemxtraitsystem":                "ItemXTraitSystem.dbd",
	"journalencounter":                "JournalEncounter.dbd",
	"journalencountercreature":        "JournalEncounterCreature.dbd",
	"journalencounteritem":            "JournalEncounterItem.dbd",
	"journalencountersection":         "JournalEncounterSection.dbd",
	"journalencounterxdifficulty":     "JournalEncounterXDifficulty.dbd",
	"journalencounterxmaploc":         "JournalEncounterXMapLoc.dbd",
	"journalinstance":                 "JournalInstance.dbd",
	"journalinstanceentrance":         "JournalInstanceEntrance.dbd",
	"journalitemxdifficulty":          "JournalItemXDifficulty.dbd",
	"journalsectionxdifficulty":       "JournalSectionXDifficulty.dbd",
	"journaltier":                     "JournalTier.dbd",
	"journaltierxinstance":            "JournalTierXInstance.dbd",
	"keychain":                        "Keychain.dbd",
	"keystoneaffix":                   "KeystoneAffix.dbd",
	"labelxcontentrestrictruleset":    "LabelXContentRestrictRuleSet.dbd",
	"languages":                       "Languages.dbd",
	"languagewords":                   "LanguageWords.dbd",
	"lfgdungeonexpansion":             "LFGDungeonExpansion.dbd",
	"lfgdungeongroup":                 "LFGDungeonGroup.dbd",
	"lfgdungeons":                     "LFGDungeons.dbd",
	"lfgdungeonsgroupingmap":          "LfgDungeonsGroupingMap.dbd",
	"lfgrolerequirement":              "LFGRoleRequirement.dbd",
	"light":                           "Light.dbd",
	"lightdata":                       "LightData.dbd",
	"lightintband":                    "LightIntBand.dbd",
	"lightning":                       "Lightning.dbd",
	"lightparams":                     "LightParams.dbd",
	"lightparamslightshaft":           "LightParamsLightShaft.dbd",
	"lightshaft":                      "LightShaft.dbd",
	"lightskybox":                     "LightSkybox.dbd",
	"lightworldshadow":                "LightWorldShadow.dbd",
	"liquidmaterial":                  "LiquidMaterial.dbd",
	"liquidobject":                    "LiquidObject.dbd",
	"liquidtype":                      "LiquidType.dbd",
	"liquidtypextexture":              "LiquidTypeXTexture.dbd",
	"livingworldobjecttemplate":       "LivingWorldObjectTemplate.dbd",
	"livingworldobjecttemplatemodel":  "LivingWorldObjectTemplateModel.dbd",
	"loadingscreens":                  "LoadingScreens.dbd",
	"loadingscreenskin":               "LoadingScreenSkin.dbd",
	"loadingscreentaxisplines":        "LoadingScreenTaxiSplines.dbd",
	"location":                        "Location.dbd",
	"lock":                            "Lock.dbd",
	"locktype":                        "LockType.dbd",
	"lookatcontroller":                "LookAtController.dbd",
	"loretext":                        "LoreText.dbd",
	"loretextpublic":                  "LoreTextPublic.dbd",
	"mailtemplate":                    "MailTemplate.dbd",
	"managedworldstate":               "ManagedWorldState.dbd",
	"managedworldstatebuff":           "ManagedWorldStateBuff.dbd",
	"managedworldstateinput":          "ManagedWorldStateInput.dbd",
	"manifestinterfaceactionicon":     "ManifestInterfaceActionIcon.dbd",
	"manifestinterfacedata":           "ManifestInterfaceData.dbd",
	"manifestinterfaceitemicon":       "ManifestInterfaceItemIcon.dbd",
	"manifestinterfacetocdata":        "ManifestInterfaceTOCData.dbd",
	"manifestmp3":                     "ManifestMP3.dbd",
	"map":                             "Map.dbd",
	"mapchallengemode":                "MapChallengeMode.dbd",
	"mapchallengemodeaffixcriteria":   "MapChallengeModeAffixCriteria.dbd",
	"mapdifficulty":                   "MapDifficulty.dbd",
	"mapdifficultyredirect":           "MapDifficultyRedirect.dbd",
	"mapdifficultyxcondition":         "MapDifficultyXCondition.dbd",
	"maploadingscreen":                "MapLoadingScreen.dbd",
	"maprenderscale":                  "MapRenderScale.dbd",
	"marketingpromotionsxlocale":      "MarketingPromotionsXLocale.dbd",
	"material":                        "Material.dbd",
	"mawpower":                        "MawPower.dbd",
	"mawpowerrarity":                  "MawPowerRarity.dbd",
	"mcrslotxmcrcategory":             "MCRSlotXMCRCategory.dbd",
	"minortalent":                     "MinorTalent.dbd",
	"missiletargeting":                "MissileTargeting.dbd",
	"mobilestrings":                   "MobileStrings.dbd",
	"modelfiledata":                   "ModelFileData.dbd",
	"modelmanifest":                   "ModelManifest.dbd",
	"modelnametomanifest":             "ModelNameToManifest.dbd",
	"modelribbonquality":              "ModelRibbonQuality.dbd",
	"modelsound":                      "ModelSound.dbd",
	"modelsoundanimentry":             "ModelSoundAnimEntry.dbd",
	"modelsoundentry":                 "ModelSoundEntry.dbd",
	"modelsoundoverride":              "ModelSoundOverride.dbd",
	"modelsoundoverridename":          "ModelSoundOverrideName.dbd",
	"modelsoundsettings":              "ModelSoundSettings.dbd",
	"modelsoundtagentry":              "ModelSoundTagEntry.dbd",
	"modifiedcraftingcategory":        "ModifiedCraftingCategory.dbd",
	"modifiedcraftingitem":            "ModifiedCraftingItem.dbd",
	"modifiedcraftingreagentitem":     "ModifiedCraftingReagentItem.dbd",
	"modifiedcraftingreagentslot":     "ModifiedCraftingReagentSlot.dbd",
	"modifiedreagentitem":             "ModifiedReagentItem.dbd",
	"modifiertree":                    "ModifierTree.dbd",
	"mount":                           "Mount.dbd",
	"mountcapability":                 "MountCapability.dbd",
	"mountequipment":                  "MountEquipment.dbd",
	"mounttype":                       "MountType.dbd",
	"mounttypexcapability":            "MountTypeXCapability.dbd",
	"mountxdisplay":                   "MountXDisplay.dbd",
	"mountxspellvisualkitpicker":      "MountXSpellVisualKitPicker.dbd",
	"movie":                           "Movie.dbd",
	"moviefiledata":                   "MovieFileData.dbd",
	"movieoverlays":                   "MovieOverlays.dbd",
	"movievariation":                  "MovieVariation.dbd",
	"multistateproperties":            "MultiStateProperties.dbd",
	"multitransitionproperties":       "MultiTransitionProperties.dbd",
	"mythicplusseason":                "MythicPlusSeason.dbd",
	"mythicplusseasonkeyfloor":        "MythicPlusSeasonKeyFloor.dbd",
	"mythicplusseasonrewardlevels":    "MythicPlusSeasonRewardLevels.dbd",
	"mythicplusseasontrackedaffix":    "MythicPlusSeasonTrackedAffix.dbd",
	"mythicplusseasontrackedmap":      "MythicPlusSeasonTrackedMap.dbd",
	"namegen":                         "NameGen.dbd",
	"namesprofanity":                  "NamesProfanity.dbd",
	"namesreserved":                   "NamesReserved.dbd",
	"namesreservedlocale":             "NamesReservedLocale.dbd",
	"npccraftingordercustomer":        "NPCCraftingOrderCustomer.dbd",
	"npccraftingordercustomerxlabel":  "NPCCraftingOrderCustomerXLabel.dbd",
	"npccraftingorderset":             "NPCCraftingOrderSet.dbd",
	"npccraftingordersetxcraftorder":  "NPCCraftingOrderSetXCraftOrder.dbd",
	"npccraftingordersetxcustomer":    "NPCCraftingOrderSetXCustomer.dbd",
	"npccraftingordersetxtreasure":    "NPCCraftingOrderSetXTreasure.dbd",
	"npcsounds":                       "NPCSounds.dbd",
	"numtalentsatlevel":               "NumTalentsAtLevel.dbd",
	"objecteffect":                    "ObjectEffect.dbd",
	"objecteffectgroup":               "ObjectEffectGroup.dbd",
	"objecteffectmodifier":            "ObjectEffectModifier.dbd",
	"objecteffectpackage":             "ObjectEffectPackage.dbd",
	"objecteffectpackageelem":         "ObjectEffectPackageElem.dbd",
	"objecteffectstatename":           "ObjectEffectStateName.dbd",
	"occluder":                        "Occluder.dbd",
	"occludercurtain":                 "OccluderCurtain.dbd",
	"occluderlocation":                "OccluderLocation.dbd",
	"occludernode":                    "OccluderNode.dbd",
	"outlineeffect":                   "OutlineEffect.dbd",
	"overridespelldata":               "OverrideSpellData.dbd",
	"package":                         "Package.dbd",
	"pagetextmaterial":                "PageTextMaterial.dbd",
	"paragonreputation":               "ParagonReputation.dbd",
	"particlecolor":                   "ParticleColor.dbd",
	"particulate":                     "Particulate.dbd",
	"particulatesound":                "ParticulateSound.dbd",
	"path":                            "Path.dbd",
	"pathedge":                        "PathEdge.dbd",
	"pathnode":                        "PathNode.dbd",
	"pathnodeproperty":                "PathNodeProperty.dbd",
	"pathproperty":                    "PathProperty.dbd",
	"perksactivity":                   "PerksActivity.dbd",
	"perksactivitycondition":          "PerksActivityCondition.dbd",
	"perksactivitytag":                "PerksActivityTag.dbd",
	"perksactivitythreshold":          "PerksActivityThreshold.dbd",
	"perksactivitythresholdgroup":     "PerksActivityThresholdGroup.dbd",
	"perksactivityxholidays":          "PerksActivityXHolidays.dbd",
	"perksactivityxinterval":          "PerksActivityXInterval.dbd",
	"perksuitheme":                    "PerksUITheme.dbd",
	"perksvendorcategory":             "PerksVendorCategory.dbd",
	"perksvendoritem":                 "PerksVendorItem.dbd",
	"perksvendoritemuigroup":          "PerksVendorItemUIGroup.dbd",
	"perksvendoritemuiinfo":           "PerksVendorItemUIInfo.dbd",
	"perksvendoritemxinterval":        "PerksVendorItemXInterval.dbd",
	"petitiontype":                    "PetitionType.dbd",
	"petloyalty":                      "PetLoyalty.dbd",
	"petpersonality":                  "PetPersonality.dbd",
	"phase":                           "Phase.dbd",
	"phaseshiftzonesounds":            "PhaseShiftZoneSounds.dbd",
	"phasexphasegroup":                "PhaseXPhaseGroup.dbd",
	"pingtype":                        "PingType.dbd",
	"playercompanioninfo":             "PlayerCompanionInfo.dbd",
	"playercondition":                 "PlayerCondition.dbd",
	"itemchildequipment":              "ItemChildEquipment.dbd",
	"itemdamagetwohand":               "ItemDamageTwoHand.dbd",
	"itemlevelselectorquality":        "ItemLevelSelectorQuality.dbd",
	"itemrangeddisplayinfo":           "ItemRangedDisplayInfo.dbd",
	"itemupgrade":                     "ItemUpgrade.dbd",
	"journalinstancequeueloc":         "JournalInstanceQueueLoc.dbd",
	"lightfloatband":                  "LightFloatBand.dbd",
	"locale":                          "Locale.dbd",
	"mapcelestialbody":                "MapCelestialBody.dbd",
	"modelanimcloakdampening":         "ModelAnimCloakDampening.dbd",
	"modifiedcraftingspellslot":       "ModifiedCraftingSpellSlot.dbd",
	"musicoverride":                   "MusicOverride.dbd",
	"npcmodelitemslotdisplayinfo":     "NPCModelItemSlotDisplayInfo.dbd",
	"paperdollitemframe":              "PaperDollItemFrame.dbd",
	"playerdataelementcharacter":      "PlayerDataElementCharacter.dbd",
	"playerdataflagaccount":           "PlayerDataFlagAccount.dbd",
	"playerdataflagcharacter":         "PlayerDataFlagCharacter.dbd",
	"playerinteractioninfo":           "PlayerInteractionInfo.dbd",
	"pointlightconditionmap":          "PointLightConditionMap.dbd",
	"positioner":                      "Positioner.dbd",
	"positionerstate":                 "PositionerState.dbd",
	"positionerstateentry":            "PositionerStateEntry.dbd",
	"powerdisplay":                    "PowerDisplay.dbd",
	"powertype":                       "PowerType.dbd",
	"prestigelevelinfo":               "PrestigeLevelInfo.dbd",
	"profession":                      "Profession.dbd",
	"professioneffect":                "ProfessionEffect.dbd",
	"professioneffecttype":            "ProfessionEffectType.dbd",
	"professionexpansion":             "ProfessionExpansion.dbd",
	"professionrating":                "ProfessionRating.dbd",
	"professiontrait":                 "ProfessionTrait.dbd",
	"professiontraitxeffect":          "ProfessionTraitXEffect.dbd",
	"professiontraitxlabel":           "ProfessionTraitXLabel.dbd",
	"professionxrating":               "ProfessionXRating.dbd",
	"proftraitpathnode":               "ProfTraitPathNode.dbd",
	"proftraitperknode":               "ProfTraitPerkNode.dbd",
	"proftraittree":                   "ProfTraitTree.dbd",
	"proftraittreehighlight":          "ProfTraitTreeHighlight.dbd",
	"pvpbrackettypes":                 "PVPBracketTypes.dbd",
	"pvpbrawl":                        "PvpBrawl.dbd",
	"pvpdifficulty":                   "PVPDifficulty.dbd",
	"pvpitem":                         "PVPItem.dbd",
	"pvprating":                       "PvpRating.dbd",
	"pvpreward":                       "PvpReward.dbd",
	"pvpscalingeffect":                "PvpScalingEffect.dbd",
	"pvpscoreboardcellinfo":           "PVPScoreboardCellInfo.dbd",
	"pvpscoreboardcolumnheader":       "PVPScoreboardColumnHeader.dbd",
	"pvpscoreboardlayout":             "PVPScoreboardLayout.dbd",
	"pvpseason":                       "PvpSeason.dbd",
	"pvpseasonrewardlevels":           "PvpSeasonRewardLevels.dbd",
	"pvpstat":                         "PVPStat.dbd",
	"pvptalent":                       "PvpTalent.dbd",
	"pvptalentcategory":               "PvpTalentCategory.dbd",
	"pvptalentslotunlock":             "PvpTalentSlotUnlock.dbd",
	"pvptalentunlock":                 "PvpTalentUnlock.dbd",
	"pvptier":                         "PvpTier.dbd",
	"questdrivenscenario":             "QuestDrivenScenario.dbd",
	"questfactionreward":              "QuestFactionReward.dbd",
	"questfeedbackeffect":             "QuestFeedbackEffect.dbd",
	"questhub":                        "QuestHub.dbd",
	"questinfo":                       "QuestInfo.dbd",
	"questline":                       "QuestLine.dbd",
	"questlinexquest":                 "QuestLineXQuest.dbd",
	"questmoneyreward":                "QuestMoneyReward.dbd",
	"questobjective":                  "QuestObjective.dbd",
	"questpackageitem":                "QuestPackageItem.dbd",
	"questpoiblob":                    "QuestPOIBlob.dbd",
	"questpoipoint":                   "QuestPOIPoint.dbd",
	"questsort":                       "QuestSort.dbd",
	"questv2":                         "QuestV2.dbd",
	"questv2clitask":                  "QuestV2CliTask.dbd",
	"questxgroupactivity":             "QuestXGroupActivity.dbd",
	"questxp":                         "QuestXP.dbd",
	"questxuiquestdetailstheme":       "QuestXUIQuestDetailsTheme.dbd",
	"questxuiwidgetset":               "QuestXUiWidgetSet.dbd",
	"racialmounts":                    "RacialMounts.dbd",
	"rafactivity":                     "RafActivity.dbd",
	"recipeprogressiongroupentry":     "RecipeProgressionGroupEntry.dbd",
	"relicslottierrequirement":        "RelicSlotTierRequirement.dbd",
	"relictalent":                     "RelicTalent.dbd",
	"renownrewards":                   "RenownRewards.dbd",
	"renownrewardsplunderstorm":       "RenownRewardsPlunderstorm.dbd",
	"researchbranch":                  "ResearchBranch.dbd",
	"researchfield":                   "ResearchField.dbd",
	"researchproject":                 "ResearchProject.dbd",
	"researchsite":                    "ResearchSite.dbd",
	"resistances":                     "Resistances.dbd",
	"rewardpack":                      "RewardPack.dbd",
	"rewardpackxcurrencytype":         "RewardPackXCurrencyType.dbd",
	"rewardpackxitem":                 "RewardPackXItem.dbd",
	"ribbonquality":                   "RibbonQuality.dbd",
	"rolodextype":                     "RolodexType.dbd",
	"ropeeffect":                      "RopeEffect.dbd",
	"rtpcdata":                        "RTPCData.dbd",
	"rulesetitemupgrade":              "RulesetItemUpgrade.dbd",
	"rulesetraidlootupgrade":          "RulesetRaidLootUpgrade.dbd",
	"rulesetraidoverride":             "RulesetRaidOverride.dbd",
	"runeforgelegendaryability":       "RuneforgeLegendaryAbility.dbd",
	"sandboxscaling":                  "SandboxScaling.dbd",
	"scalingstatdistribution":         "ScalingStatDistribution.dbd",
	"scalingstatvalues":               "ScalingStatValues.dbd",
	"scenario":                        "Scenario.dbd",
	"scenarioevententry":              "ScenarioEventEntry.dbd",
	"scenariostep":                    "ScenarioStep.dbd",
	"scenescript":                     "SceneScript.dbd",
	"scenescriptglobaltext":           "SceneScriptGlobalText.dbd",
	"scenescriptpackage":              "SceneScriptPackage.dbd",
	"scenescriptpackagemember":        "SceneScriptPackageMember.dbd",
	"scheduledinterval":               "ScheduledInterval.dbd",
	"scheduledworldstate":             "ScheduledWorldState.dbd",
	"scheduledworldstategroup":        "ScheduledWorldStateGroup.dbd",
	"scheduledworldstatexuniqcat":     "ScheduledWorldStateXUniqCat.dbd",
	"screeneffect":                    "ScreenEffect.dbd",
	"screeneffecttype":                "ScreenEffectType.dbd",
	"screenlocation":                  "ScreenLocation.dbd",
	"sdreplacementmodel":              "SDReplacementModel.dbd",
	"seamlesssite":                    "SeamlessSite.dbd",
	"servermessages":                  "ServerMessages.dbd",
	"shadowyeffect":                   "ShadowyEffect.dbd",
	"sharedstring":                    "SharedString.dbd",
	"sheathesoundlookups":             "SheatheSoundLookups.dbd",
	"siegeableproperties":             "SiegeableProperties.dbd",
	"skillcostsdata":                  "SkillCostsData.dbd",
	"skilllineability":                "SkillLineAbility.dbd",
	"skilllineabilitysortedspell":     "SkillLineAbilitySortedSpell.dbd",
	"skilllinecategory":               "SkillLineCategory.dbd",
	"skilllinextraittree":             "SkillLineXTraitTree.dbd",
	"skillraceclassinfo":              "SkillRaceClassInfo.dbd",
	"skilltiers":                      "SkillTiers.dbd",
	"skyscenexplayercondition":        "SkySceneXPlayerCondition.dbd",
	"soulbind":                        "Soulbind.dbd",
	"soulbindconduit":                 "SoulbindConduit.dbd",
	"soulbindconduitenhancedsocket":   "SoulbindConduitEnhancedSocket.dbd",
	"soulbindconduititem":             "SoulbindConduitItem.dbd",
	"soulbindconduitrank":             "SoulbindConduitRank.dbd",
	"soulbindconduitrankproperties":   "SoulbindConduitRankProperties.dbd",
	"soulbinduidisplayinfo":           "SoulbindUIDisplayInfo.dbd",
	"soundambience":                   "SoundAmbience.dbd",
	"soundbus":                        "SoundBus.dbd",
	"soundbusname":                    "SoundBusName.dbd",
	"soundbusoverride":                "SoundBusOverride.dbd",
	"soundcharactermacrolines":        "SoundCharacterMacroLines.dbd",
	"soundemitterpillpoints":          "SoundEmitterPillPoints.dbd",
	"soundemitters":                   "SoundEmitters.dbd",
	"soundentries":                    "SoundEntries.dbd",
	"soundentriesadvanced":            "SoundEntriesAdvanced.dbd",
	"soundentriesfallbacks":           "SoundEntriesFallbacks.dbd",
	"soundenvelope":                   "SoundEnvelope.dbd",
	"soundfilter":                     "SoundFilter.dbd",
	"soundfilterelem":                 "SoundFilterElem.dbd",
	"soundkit":                        "SoundKit.dbd",
	"soundkitadvanced":                "SoundKitAdvanced.dbd",
	"soundkitchild":                   "SoundKitChild.dbd",
	"soundkitentry":                   "SoundKitEntry.dbd",
	"soundkitname":                    "SoundKitName.dbd",
	"soundmixgroup":                   "SoundMixGroup.dbd",
	"soundoverride":                   "SoundOverride.dbd",
	"soundparameter":                  "SoundParameter.dbd",
	"soundproviderpreferences":        "SoundProviderPreferences.dbd",
	"soundsamplepreferences":          "SoundSamplePreferences.dbd",
	"soundwaterfallemitter":           "SoundWaterfallEmitter.dbd",
	"soundwatertype":                  "SoundWaterType.dbd",
	"sourceinfo":                      "SourceInfo.dbd",
	"spammessages":                    "SpamMessages.dbd",
	"specializationspells":            "SpecializationSpells.dbd",
	"specializationspellsdisplay":     "SpecializationSpellsDisplay.dbd",
	"specsetmember":                   "SpecSetMember.dbd",
	"spell":                           "Spell.dbd",
	"spellactionbarpref":              "SpellActionBarPref.dbd",
	"spellauranames":                  "SpellAuraNames.dbd",
	"spellauraoptions":                "SpellAuraOptions.dbd",
	"spellaurarestrictions":           "SpellAuraRestrictions.dbd",
	"spellaurarestrictionsdifficulty": "SpellAuraRestrictionsDifficulty.dbd",
	"spellauravisibility":             "SpellAuraVisibility.dbd",
	"spellauravisxchrspec":            "SpellAuraVisXChrSpec.dbd",
	"spellauravisxtalenttab":          "SpellAuraVisXTalentTab.dbd",
	"spellcastingrequirements":        "SpellCastingRequirements.dbd",
	"spellcasttimes":                  "SpellCastTimes.dbd",
	"spellcategories":                 "SpellCategories.dbd",
	"spellcategory":                   "SpellCategory.dbd",
	"spellchaineffects":               "SpellChainEffects.dbd",
	"spellclassoptions":               "SpellClassOptions.dbd",
	"spellclutterareaeffectcounts":    "SpellClutterAreaEffectCounts.dbd",
	"spellclutterframerates":          "SpellClutterFrameRates.dbd",
	"spellclutterkitdistances":        "SpellClutterKitDistances.dbd",
	"spellcluttermissiledist":         "SpellClutterMissileDist.dbd",
	"spellclutterweapontraildist":     "SpellClutterWeaponTrailDist.dbd",
	"spellcooldowns":                  "SpellCooldowns.dbd",
	"spellcraftui":                    "SpellCraftUI.dbd",
	"spelldescriptionvariables":       "SpellDescriptionVariables.dbd",
	"spelldifficulty":                 "SpellDifficulty.dbd",
	"spelldispeltype":                 "SpellDispelType.dbd",
	"spellduration":                   "SpellDuration.dbd",
	"spelleffect":                     "SpellEffect.dbd",
	"spelleffectautodescription":      "SpellEffectAutoDescription.dbd",
	"spelleffectcamerashakes":         "SpellEffectCameraShakes.dbd",
	"spelleffectemission":             "SpellEffectEmission.dbd",
	"spelleffectgroupsize":            "SpellEffectGroupSize.dbd",
	"spelleffectnames":                "SpellEffectNames.dbd",
	"spellempower":                    "SpellEmpower.dbd",
	"spellempowerstage":               "SpellEmpowerStage.dbd",
	"spellequippeditems":              "SpellEquippedItems.dbd",
	"spellflyout":                     "SpellFlyout.dbd",
	"spellflyoutitem":                 "SpellFlyoutItem.dbd",
	"spellfocusobject":                "SpellFocusObject.dbd",
	"spellicon":                       "SpellIcon.dbd",
	"spellinterrupts":                 "SpellInterrupts.dbd",
	"spellitemenchantment":            "SpellItemEnchantment.dbd",
	"spellitemenchantmentcondition":   "SpellItemEnchantmentCondition.dbd",
	"spellkeyboundoverride":           "SpellKeyboundOverride.dbd",
	"spelllabel":                      "SpellLabel.dbd",
	"spelllearnspell":                 "SpellLearnSpell.dbd",
	"spelllevels":                     "SpellLevels.dbd",
	"spellmastery":                    "SpellMastery.dbd",
	"spellmechanic":                   "SpellMechanic.dbd",
	"spellmisc":                       "SpellMisc.dbd",
	"spellmiscdifficulty":             "SpellMiscDifficulty.dbd",
	"spellmissile":                    "SpellMissile.dbd",
	"spellmissilemotion":              "SpellMissileMotion.dbd",
	"spellname":                       "SpellName.dbd",
	"spelloverridename":               "SpellOverrideName.dbd",
	"spellpower":                      "SpellPower.dbd",
	"spellpowerdifficulty":            "SpellPowerDifficulty.dbd",
	"spellproceduraleffect":           "SpellProceduralEffect.dbd",
	"spellprocsperminute":             "SpellProcsPerMinute.dbd",
	"spellprocsperminutemod":          "SpellProcsPerMinuteMod.dbd",
	"spellradius":                     "SpellRadius.dbd",
	"spellrange":                      "SpellRange.dbd",
	"spellreagents":                   "SpellReagents.dbd",
	"spellreagentscurrency":           "SpellReagentsCurrency.dbd",
	"spellreplacement":                "SpellReplacement.dbd",
	"spellscaling":                    "SpellScaling.dbd",
	"spellscript":                     "SpellScript.dbd",
	"spellscripttext":                 "SpellScriptText.dbd",
	"spellshapeshift":                 "SpellShapeshift.dbd",
	"spellshapeshiftform":             "SpellShapeshiftForm.dbd",
	"spellspecialuniteffect":          "SpellSpecialUnitEffect.dbd",
	"spelltargetrestrictions":         "SpellTargetRestrictions.dbd",
	"spelltooltip":                    "SpellTooltip.dbd",
	"spelltotems":                     "SpellTotems.dbd",
	"spellvisual":                     "SpellVisual.dbd",
	"spellvisualanim":                 "SpellVisualAnim.dbd",
	"spellvisualanimname":             "SpellVisualAnimName.dbd",
	"spellvisualcoloreffect":          "SpellVisualColorEffect.dbd",
	"spellvisualeffectname":           "SpellVisualEffectName.dbd",
	"spellvisualevent":                "SpellVisualEvent.dbd",
	"playerdataelementaccount":        "PlayerDataElementAccount.dbd",
	"professionproppoints":            "ProfessionPropPoints.dbd",
	"pvpscalingeffecttype":            "PvpScalingEffectType.dbd",
	"questlabel":                      "QuestLabel.dbd",
	"randproppoints":                  "RandPropPoints.dbd",
	"rtpc":                            "RTPC.dbd",
	"scenescripttext":                 "SceneScriptText.dbd",
	"skillline":                       "SkillLine.dbd",
	"soundambienceflavor":             "SoundAmbienceFlavor.dbd",
	"soundkitfallback":                "SoundKitFallback.dbd",
	"spellactivationoverlay":          "SpellActivationOverlay.dbd",
	"spellclutterimpactmodelcounts":   "SpellClutterImpactModelCounts.dbd",
	"spelleffectscaling":              "SpellEffectScaling.dbd",
	"spellmemorizecost":               "SpellMemorizeCost.dbd",
	"spellrunecost":                   "SpellRuneCost.dbd",
	"spellvisualkit":                  "SpellVisualKit.dbd",
	"stationery":                      "Stationery.dbd",
	"terraintypesounds":               "TerrainTypeSounds.dbd",
	"traitedge":                       "TraitEdge.dbd",
	"traittreeloadoutentry":           "TraitTreeLoadoutEntry.dbd",
	"trophytype":                      "TrophyType.dbd",
	"uieventtoast":                    "UIEventToast.dbd",
	"uimappoi":                        "UiMapPOI.dbd",
	"uitextureatlasmember":            "UiTextureAtlasMember.dbd",
	"unittestsparse":                  "UnitTestSparse.dbd",
	"warbandscene":                    "WarbandScene.dbd",
	"wbpermissions":                   "WbPermissions.dbd",
	"worldlayermapset":                "WorldLayerMapSet.dbd",
	"contenttuningxexpectedstatmod":   "ContentTuningXExpectedStatMod.dbd",
	"itemarmorshield":                 "ItemArmorShield.dbd",
	"perksactivityxtag":               "PerksActivityXTag.dbd",
	"spellvisualkitareamodel":         "SpellVisualKitAreaModel.dbd",
	"spellvisualkiteffect":            "SpellVisualKitEffect.dbd",
	"spellvisualkitmodelattach":       "SpellVisualKitModelAttach.dbd",
	"spellvisualkitpicker":            "SpellVisualKitPicker.dbd",
	"spellvisualkitpickerentry":       "SpellVisualKitPickerEntry.dbd",
	"spellvisualmissile":              "SpellVisualMissile.dbd",
	"spellvisualprecasttransitions":   "SpellVisualPrecastTransitions.dbd",
	"spellvisualscreeneffect":         "SpellVisualScreenEffect.dbd",
	"spellxdescriptionvariables":      "SpellXDescriptionVariables.dbd",
	"spellxspellvisual":               "SpellXSpellVisual.dbd",
	"spotlightconditionmap":           "SpotLightConditionMap.dbd",
	"ssaosettings":                    "SSAOSettings.dbd",
	"stableslotprices":                "StableSlotPrices.dbd",
	"startupfiles":                    "StartupFiles.dbd",
	"startup_strings":                 "Startup_Strings.dbd",
	"stringlookups":                   "StringLookups.dbd",
	"summonproperties":                "SummonProperties.dbd",
	"tabardbackgroundtextures":        "TabardBackgroundTextures.dbd",
	"tabardemblemtextures":            "TabardEmblemTextures.dbd",
	"tactkey":                         "TactKey.dbd",
	"tactkeylookup":                   "TactKeyLookup.dbd",
	"talent":                          "Talent.dbd",
	"talenttab":                       "TalentTab.dbd",
	"talenttreeprimaryspells":         "TalentTreePrimarySpells.dbd",
	"taxinodes":                       "TaxiNodes.dbd",
	"taxipath":                        "TaxiPath.dbd",
	"taxipathnode":                    "TaxiPathNode.dbd",
	"teamcontributionpoints":          "TeamContributionPoints.dbd",
	"terraincolorgradingramp":         "TerrainColorGradingRamp.dbd",
	"terrainmaterial":                 "TerrainMaterial.dbd",
	"terraintype":                     "TerrainType.dbd",
	"textureblendset":                 "TextureBlendSet.dbd",
	"texturefiledata":                 "TextureFileData.dbd",
	"tiertransition":                  "TierTransition.dbd",
	"timeeventdata":                   "TimeEventData.dbd",
	"totemcategory":                   "TotemCategory.dbd",
	"toy":                             "Toy.dbd",
	"tradeskillcategory":              "TradeSkillCategory.dbd",
	"tradeskillitem":                  "TradeSkillItem.dbd",
	"traitcond":                       "TraitCond.dbd",
	"traitcondaccountelement":         "TraitCondAccountElement.dbd",
	"traitcost":                       "TraitCost.dbd",
	"traitcostdefinition":             "TraitCostDefinition.dbd",
	"traitcurrency":                   "TraitCurrency.dbd",
	"traitcurrencysource":             "TraitCurrencySource.dbd",
	"traitdefinition":                 "TraitDefinition.dbd",
	"traitdefinitioneffectpoints":     "TraitDefinitionEffectPoints.dbd",
	"traitnode":                       "TraitNode.dbd",
	"traitnodeentry":                  "TraitNodeEntry.dbd",
	"traitnodeentryxtraitcond":        "TraitNodeEntryXTraitCond.dbd",
	"traitnodeentryxtraitcost":        "TraitNodeEntryXTraitCost.dbd",
	"traitnodegroup":                  "TraitNodeGroup.dbd",
	"traitnodegroupxtraitcond":        "TraitNodeGroupXTraitCond.dbd",
	"traitnodegroupxtraitcost":        "TraitNodeGroupXTraitCost.dbd",
	"traitnodegroupxtraitnode":        "TraitNodeGroupXTraitNode.dbd",
	"traitnodextraitcond":             "TraitNodeXTraitCond.dbd",
	"traitnodextraitcost":             "TraitNodeXTraitCost.dbd",
	"traitnodextraitnodeentry":        "TraitNodeXTraitNodeEntry.dbd",
	"traitsubtree":                    "TraitSubTree.dbd",
	"traitsystem":                     "TraitSystem.dbd",
	"traittree":                       "TraitTree.dbd",
	"traittreeloadout":                "TraitTreeLoadout.dbd",
	"traittreextraitcost":             "TraitTreeXTraitCost.dbd",
	"traittreextraitcurrency":         "TraitTreeXTraitCurrency.dbd",
	"transformmatrix":                 "TransformMatrix.dbd",
	"transmogdefaultlevel":            "TransmogDefaultLevel.dbd",
	"transmogholiday":                 "TransmogHoliday.dbd",
	"transmogillusion":                "TransmogIllusion.dbd",
	"transmogset":                     "TransmogSet.dbd",
	"transmogsetgroup":                "TransmogSetGroup.dbd",
	"transmogsetitem":                 "TransmogSetItem.dbd",
	"transportanimation":              "TransportAnimation.dbd",
	"transportphysics":                "TransportPhysics.dbd",
	"transportrotation":               "TransportRotation.dbd",
	"treasure":                        "Treasure.dbd",
	"trophy":                          "Trophy.dbd",
	"trophyinstance":                  "TrophyInstance.dbd",
	"uiarrowcallout":                  "UIArrowCallout.dbd",
	"uibutton":                        "UIButton.dbd",
	"uicamera":                        "UiCamera.dbd",
	"uicameratype":                    "UiCameraType.dbd",
	"uicamfbacktalkingheadchrrace":    "UiCamFbackTalkingHeadChrRace.dbd",
	"uicamfbacktransmogchrrace":       "UiCamFbackTransmogChrRace.dbd",
	"uicamfbacktransmogweapon":        "UiCamFbackTransmogWeapon.dbd",
	"uicanvas":                        "UiCanvas.dbd",
	"uichromietimeexpansioninfo":      "UIChromieTimeExpansionInfo.dbd",
	"uicinematicintroinfo":            "UICinematicIntroInfo.dbd",
	"uicovenantability":               "UICovenantAbility.dbd",
	"uicovenantdisplayinfo":           "UiCovenantDisplayInfo.dbd",
	"uicovenantpreview":               "UICovenantPreview.dbd",
	"uideadlydebuff":                  "UIDeadlyDebuff.dbd",
	"uidungeonscorerarity":            "UIDungeonScoreRarity.dbd",
	"uiexpansiondisplayinfo":          "UIExpansionDisplayInfo.dbd",
	"uiexpansiondisplayinfoicon":      "UIExpansionDisplayInfoIcon.dbd",
	"uigenericwidgetdisplay":          "UIGenericWidgetDisplay.dbd",
	"uiiteminteraction":               "UiItemInteraction.dbd",
	"uimap":                           "UiMap.dbd",
	"uimapart":                        "UiMapArt.dbd",
	"uimapartstylelayer":              "UiMapArtStyleLayer.dbd",
	"uimaparttile":                    "UiMapArtTile.dbd",
	"uimapassignment":                 "UiMapAssignment.dbd",
	"uimapfogofwar":                   "UiMapFogOfWar.dbd",
	"uimapfogofwarvisualization":      "UiMapFogOfWarVisualization.dbd",
	"uimapgroup":                      "UiMapGroup.dbd",
	"uimapgroupmember":                "UiMapGroupMember.dbd",
	"uimaplink":                       "UiMapLink.dbd",
	"uimappininfo":                    "UIMapPinInfo.dbd",
	"uimapxmapart":                    "UiMapXMapArt.dbd",
	"uimodelscene":                    "UiModelScene.dbd",
	"uimodelsceneactor":               "UiModelSceneActor.dbd",
	"uimodelsceneactordisplay":        "UiModelSceneActorDisplay.dbd",
	"uimodelscenecamera":              "UiModelSceneCamera.dbd",
	"uimodifiedinstance":              "UIModifiedInstance.dbd",
	"uipartypose":                     "UiPartyPose.dbd",
	"uiquestdetailstheme":             "UiQuestDetailsTheme.dbd",
	"uiscriptedanimationeffect":       "UIScriptedAnimationEffect.dbd",
	"uisoundlookups":                  "UISoundLookups.dbd",
	"uisplashscreen":                  "UISplashScreen.dbd",
	"uitextureatlas":                  "UiTextureAtlas.dbd",
	"uitextureatlaselement":           "UiTextureAtlasElement.dbd",
	"uitextureatlaselementoverride":   "UiTextureAtlasElementOverride.dbd",
	"uitextureatlaselementslicedata":  "UiTextureAtlasElementSliceData.dbd",
	"uitexturekit":                    "UiTextureKit.dbd",
	"uiweeklyreward":                  "UiWeeklyReward.dbd",
	"uiwidget":                        "UiWidget.dbd",
	"uiwidgetconstantsource":          "UiWidgetConstantSource.dbd",
	"uiwidgetdatasource":              "UiWidgetDataSource.dbd",
	"uiwidgetmap":                     "UiWidgetMap.dbd",
	"uiwidgetset":                     "UiWidgetSet.dbd",
	"uiwidgetstringsource":            "UiWidgetStringSource.dbd",
	"uiwidgetvistypedatareq":          "UiWidgetVisTypeDataReq.dbd",
	"uiwidgetvisualization":           "UiWidgetVisualization.dbd",
	"uiwidgetxwidgetset":              "UiWidgetXWidgetSet.dbd",
	"unitblood":                       "UnitBlood.dbd",
	"unitbloodlevels":                 "UnitBloodLevels.dbd",
	"unitcondition":                   "UnitCondition.dbd",
	"unitpowerbar":                    "UnitPowerBar.dbd",
	"unittest":                        "UnitTest.dbd",
	"vehicle":                         "Vehicle.dbd",
	"vehiclepoitype":                  "VehiclePOIType.dbd",
	"vehicleseat":                     "VehicleSeat.dbd",
	"vehicleuiindicator":              "VehicleUIIndicator.dbd",
	"vehicleuiindseat":                "VehicleUIIndSeat.dbd",
	"videohardware":                   "VideoHardware.dbd",
	"vignette":                        "Vignette.dbd",
	"vignetteuiwidgetset":             "VignetteUiWidgetSet.dbd",
	"virtualattachment":               "VirtualAttachment.dbd",
	"virtualattachmentcustomization":  "VirtualAttachmentCustomization.dbd",
	"vocaluisounds":                   "VocalUISounds.dbd",
	"voiceoverpriority":               "VoiceOverPriority.dbd",
	"volumefogcondition":              "VolumeFogCondition.dbd",
	"vw_mobilespell":                  "VW_MobileSpell.dbd",
	"warbandplacementdisplayinfo":     "WarbandPlacementDisplayInfo.dbd",
	"warbandsceneanimation":           "WarbandSceneAnimation.dbd",
	"warbandsceneanimchrspec":         "WarbandSceneAnimChrSpec.dbd",
	"warbandsceneplacement":           "WarbandScenePlacement.dbd",
	"warbandsceneplacementfilterreq":  "WarbandScenePlacementFilterReq.dbd",
	"warbandsceneplacementoption":     "WarbandScenePlacementOption.dbd",
	"warbandsceneplcmntanimoverride":  "WarbandScenePlcmntAnimOverride.dbd",
	"warbandscenesourceinfo":          "WarbandSceneSourceInfo.dbd",
	"waterfalldata":                   "WaterfallData.dbd",
	"waypointedge":                    "WaypointEdge.dbd",
	"waypointmapvolume":               "WaypointMapVolume.dbd",
	"waypointnode":                    "WaypointNode.dbd",
	"waypointsafelocs":                "WaypointSafeLocs.dbd",
	"wbaccesscontrollist":             "WbAccessControlList.dbd",
	"wbcertblacklist":                 "WbCertBlacklist.dbd",
	"wbcertwhitelist":                 "WbCertWhitelist.dbd",
	"weaponimpactsounds":              "WeaponImpactSounds.dbd",
	"weaponswingsounds2":              "WeaponSwingSounds2.dbd",
	"weapontrail":                     "WeaponTrail.dbd",
	"weapontrailmodeldef":             "WeaponTrailModelDef.dbd",
	"weapontrailparam":                "WeaponTrailParam.dbd",
	"weather":                         "Weather.dbd",
	"weatherxparticulate":             "WeatherXParticulate.dbd",
	"weeklyrewardchestactivitytier":   "WeeklyRewardChestActivityTier.dbd",
	"weeklyrewardchestthreshold":      "WeeklyRewardChestThreshold.dbd",
	"windsettings":                    "WindSettings.dbd",
	"wmoareatable":                    "WMOAreaTable.dbd",
	"wmominimaptexture":               "WMOMinimapTexture.dbd",
	"worldbosslockout":                "WorldBossLockout.dbd",
	"worldchunksounds":                "WorldChunkSounds.dbd",
	"worldeffect":                     "WorldEffect.dbd",
	"worldelapsedtimer":               "WorldElapsedTimer.dbd",
	"worldmaparea":                    "WorldMapArea.dbd",
	"worldmapcontinent":               "WorldMapContinent.dbd",
	"worldmapoverlay":                 "WorldMapOverlay.dbd",
	"worldmapoverlaytile":             "WorldMapOverlayTile.dbd",
	"worldmaptransforms":              "WorldMapTransforms.dbd",
	"worldsafelocs":                   "WorldSafeLocs.dbd",
	"worldshadow":                     "WorldShadow.dbd",
	"worldstate":                      "WorldState.dbd",
	"worldstateexpression":            "WorldStateExpression.dbd",
	"worldstateui":                    "WorldStateUI.dbd",
	"worldstatezonesounds":            "WorldStateZoneSounds.dbd",
	"world_pvp_area":                  "World_PVP_Area.dbd",
	"wowerror_strings":                "WowError_Strings.dbd",
	"zoneintromusictable":             "ZoneIntroMusicTable.dbd",
	"zonelight":                       "ZoneLight.dbd",
	"zonelightpoint":                  "ZoneLightPoint.dbd",
	"zonemusic":                       "ZoneMusic.dbd",
	"zonestory":                       "ZoneStory.dbd",
	"guildcolorborder":                "GuildColorBorder.dbd",
	"guildcoloremblem":                "GuildColorEmblem.dbd",
	"guildemblem":                     "GuildEmblem.dbd",
	"guildperkspells":                 "GuildPerkSpells.dbd",
	"guildshirtbackground":            "GuildShirtBackground.dbd",
	"guildshirtborder":                "GuildShirtBorder.dbd",
	"guildtabardbackground":           "GuildTabardBackground.dbd",
	"guildtabardborder":               "GuildTabardBorder.dbd",
	"guildtabardemblem":               "GuildTabardEmblem.dbd",
	"heirloom":                        "Heirloom.dbd",
	"helmetanimscaling":               "HelmetAnimScaling.dbd",
	"helmetgeosetdata":                "HelmetGeosetData.dbd",
	"helmetgeosetvisdata":             "HelmetGeosetVisData.dbd",
	"highlightcolor":                  "HighlightColor.dbd",
}

// DefinitionName resolves a raw table file name to its canonical
// definition file name. The portion of the name before the first dot is
// matched case-insensitively. ErrUnknownTable is returned for tables the
// catalog does not know about; callers are expected to skip those files.
func DefinitionName(filename string) (string, error) {
	stem := strings.ToLower(filename)
	if idx := strings.Index(stem, "."); idx != -1 {
		stem = stem[:idx]
	}

	name, ok := dbFileMap[stem]
	if !ok {
		return "", ErrUnknownTable
	}
	return name, nil
}
